package findings

import "fmt"

var ruTemplates = map[key]template{
	keyLCPCritical: {
		title: static("Крайне медленная загрузка страницы"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Основной контент появляется только через %.1f секунды. Большинство посетителей уходит после 3 секунд.", p.Seconds)
		}),
		impact: static("Вы теряете большинство посетителей ещё до того, как они что-либо увидят."),
	},
	keyLCPSlow: {
		title: static("Медленная загрузка страницы"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Основной контент появляется через %.1f секунды; рекомендованный предел — 2,5 секунды.", p.Seconds)
		}),
		impact: static("Нетерпеливые посетители уходят к более быстрым конкурентам."),
	},
	keyTTFBSlow: {
		title: static("Сервер отвечает медленно"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Серверу нужно %d мс, чтобы отдать первый байт; ожидается менее 800 мс.", p.Millis)
		}),
		impact: static("Весь сайт кажется тяжёлым, и поисковые системы это тоже замечают."),
	},
	keyPageSpeedCritical: {
		title: static("Очень низкий балл PageSpeed"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Google оценивает страницу в %d баллов из 100. Результат ниже 50 считается провальным.", p.Score)
		}),
		impact: static("Google активно продвигает более быстрые сайты в результатах поиска."),
	},
	keyPageSpeedLow: {
		title: static("Балл PageSpeed ниже среднего"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Google оценивает страницу в %d баллов из 100; у хороших сайтов больше 70.", p.Score)
		}),
		impact: static("Более быстрый сайт ранжируется выше и лучше продаёт."),
	},

	keyViewportMissing: {
		title:       static("Сайт не готов к мобильным устройствам"),
		description: static("На странице нет метатега viewport, поэтому телефоны показывают уменьшенную версию для компьютера."),
		impact:      static("Более 70 % ваших посетителей заходят с телефона и видят непригодную страницу."),
	},
	keyHorizontalScroll: {
		title:       static("Страница прокручивается вбок на телефоне"),
		description: static("Контент шире экрана и заставляет посетителей прокручивать по горизонтали."),
		impact:      static("Горизонтальная прокрутка — самый быстрый способ потерять мобильного посетителя."),
	},
	keyTouchTargets: {
		title:       static("Кнопки слишком малы для нажатия"),
		description: static("Ссылки и кнопки расположены слишком близко или слишком малы для пальца."),
		impact:      static("Посетители промахиваются, раздражаются и отказываются от связи с вами."),
	},
	keyTextUnreadable: {
		title:       static("Текст слишком мелкий на телефоне"),
		description: static("Основной текст на мобильных экранах отображается мельче читабельного размера."),
		impact:      static("Чтобы что-то прочитать, приходится увеличивать пальцами, и большинство не станет."),
	},

	keyNoHTTPS: {
		title:       static("Сайт работает без HTTPS"),
		description: static("Сайт открывается по незащищённому HTTP. Браузеры помечают его «Не защищено» прямо в адресной строке."),
		impact:      static("Предупреждение мгновенно разрушает доверие, а деликатные клиенты ценят приватность вдвойне."),
	},
	keyMixedContent: {
		title:       static("Небезопасный контент на защищённой странице"),
		description: static("Часть изображений или скриптов загружается по обычному HTTP, из-за чего пропадает значок замка."),
		impact:      static("Браузеры могут заблокировать контент или пометить страницу как рискованную."),
	},
	keyNoSecurityHeaders: {
		title:       static("Отсутствуют заголовки безопасности"),
		description: static("Защитные HTTP-заголовки вроде Content-Security-Policy не настроены."),
		impact:      static("Простое усиление защиты, которое к тому же выглядит профессионально."),
	},

	keyNoTitle: {
		title:       static("У страницы нет заголовка"),
		description: static("Тег title полностью отсутствует, поэтому в результатах поиска вместо вашего предложения показывается голый адрес."),
		impact:      static("Заголовок — важнейший SEO-элемент; без него вы невидимы."),
	},
	keyTitleTooLong: {
		title: static("Заголовок страницы слишком длинный"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Заголовок содержит %d символов; Google обрезает всё, что длиннее 70.", p.Length)
		}),
		impact: static("Обрезанный заголовок теряет свой призыв в результатах поиска."),
	},
	keyTitleTooShort: {
		title: static("Заголовок страницы слишком короткий"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("В заголовке всего %d символов — место, которое даёт Google, не используется.", p.Length)
		}),
		impact: static("Короткий общий заголовок не выдержит конкуренции с описательными."),
	},
	keyNoMetaDescription: {
		title:       static("Отсутствует метаописание"),
		description: static("Поисковым системам нечего показать, и они берут случайный фрагмент текста со страницы."),
		impact:      static("Вы отдаёте контроль над первой фразой, которую о вас прочитает потенциальный клиент."),
	},
	keyNoH1: {
		title:       static("Отсутствует главный заголовок"),
		description: static("На странице нет заголовка H1, поэтому ни посетители, ни поисковики не понимают её тему с первого взгляда."),
		impact:      static("Поисковые системы придают H1 большой вес при ранжировании."),
	},
	keyMultipleH1: {
		title: static("Несколько главных заголовков"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Страница содержит %d заголовков H1; ожидается ровно один.", p.Count)
		}),
		impact: static("Конкурирующие заголовки размывают тему страницы для поисковиков."),
	},
	keyAltTextCritical: {
		title: static("У большинства изображений нет описаний"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("%d %% изображений (всего %d) не имеют alt-текста.", p.Percent, p.Count)
		}),
		impact: static("Поиск по картинкам Google вас не найдёт, а программы чтения с экрана не увидят ничего."),
	},
	keyAltTextLow: {
		title: static("У части изображений нет описаний"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("У %d изображений отсутствует alt-текст.", p.Count)
		}),
		impact: static("Упущенный трафик из поиска по картинкам и слабая доступность."),
	},
	keyNoSitemap: {
		title:       static("Отсутствует sitemap"),
		description: static("Файл sitemap.xml не найден, и поисковикам приходится угадывать, какие страницы существуют."),
		impact:      static("Новые и обновлённые страницы индексируются медленнее или вовсе не попадают в индекс."),
	},
	keyNoStructuredData: {
		title:       static("Нет структурированных данных"),
		description: static("Страница не содержит разметки schema.org, описывающей бизнес."),
		impact:      static("Расширенные результаты поиска (звёзды, часы работы, цены) остаются недоступными."),
	},

	keyNoFAQ: {
		title:       static("Нет раздела вопросов и ответов"),
		description: static("Сайт не отвечает на типичные вопросы в формате «вопрос–ответ»."),
		impact:      static("ИИ-ассистенты вроде ChatGPT цитируют в первую очередь контент Q&A; без него вас не упоминают."),
	},
	keyNoLocalBusiness: {
		title:       static("Отсутствует схема LocalBusiness"),
		description: static("Страница не описывает бизнес структурированными данными LocalBusiness."),
		impact:      static("ИИ-поиск и карты Google не могут проверить, что, где и когда вы предлагаете."),
	},
	keyNoAddressHours: {
		title:       static("Нет ни адреса, ни часов работы"),
		description: static("На странице не указаны ни адрес, ни часы работы."),
		impact:      static("Клиенты с запросами «рядом со мной» и ИИ-ассистенты не могут вас найти и порекомендовать."),
	},
	keyNoPricing: {
		title:       static("Нет информации о ценах"),
		description: static("Страница не указывает ни цен, ни ценовых диапазонов."),
		impact: dynamic(func(p Params) string {
			return fmt.Sprintf("Клиенты, сравнивающие %s, сначала хотят цену; без неё они звонят конкурентам.", p.Label)
		}),
	},
	keyStaleContent: {
		title: static("Контент выглядит устаревшим"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Самый свежий датированный контент относится к %d году.", p.Year)
		}),
		impact: static("И клиенты, и ИИ-поиск предпочитают сайты с недавней активностью."),
	},
	keyGEOOpportunity: {
		title:       static("Неиспользованная видимость в ИИ-поиске"),
		description: static("Всё больше клиентов спрашивают рекомендации у ChatGPT и подобных ассистентов. Цитируются сайты с FAQ-контентом и данными LocalBusiness; этот пока нет."),
		impact:      static("Кто первым займёт ИИ-поиск, заберёт клиентов у всех, кто медлит."),
	},

	keyCopyrightCritical: {
		title: static("Сайт выглядит заброшенным"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Копирайт в подвале указывает %d год — это %d лет назад.", p.Year, p.Years)
		}),
		impact: static("Посетители решают, что бизнес закрыт, и уходят."),
	},
	keyCopyrightOld: {
		title: static("Год в копирайте устарел"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("В подвале всё ещё указан %d год, то есть %d лет назад.", p.Year, p.Years)
		}),
		impact: static("Мелочь, которая незаметно подтачивает доверие ко всему сайту."),
	},
	keyNoBooking: {
		title:       static("Нет онлайн-записи"),
		description: static("Клиенты не могут записаться прямо на сайте."),
		impact:      static("Каждая запись требует звонка, а звонки вне рабочих часов пропадают."),
	},
	keyNoContactOptions: {
		title:       static("Нет быстрого способа связи"),
		description: static("Страница не предлагает ни номера телефона, ни WhatsApp."),
		impact:      static("Посетитель, который не может связаться с вами за секунды, — клиент следующего сайта."),
	},
	keyNoWhatsApp: {
		title:       static("Отсутствует контакт в WhatsApp"),
		description: static("Номер телефона есть, но ссылки на WhatsApp нет."),
		impact:      static("Многие клиенты предпочитают деликатно написать, а не звонить."),
	},
	keyUnclearPricing: {
		title:       static("Непонятные цены"),
		description: static("Посетители не могут узнать, сколько стоят ваши услуги."),
		impact:      static("Неясность с ценой — одна из главных причин ухода без обращения."),
	},
	keyPageBuilder: {
		title: static("Сайт собран в шаблонном конструкторе"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Сайт работает на %s, что ограничивает скорость, SEO и индивидуальный дизайн.", p.Name)
		}),
		impact: static("Шаблонные сайты выглядят одинаково и загружаются медленнее, чем сделанные на заказ."),
	},
}
