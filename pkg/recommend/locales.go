package recommend

import "github.com/webatelier/siteaudit/internal/models"

// lexicon holds every localized string the recommendation texts use.
// One value per locale; the exhaustiveness test walks all of them.
type lexicon struct {
	bucket        map[Bucket]string
	weakIntro     string
	closing       string // %s = business label
	categoryLabel map[models.Category]string

	packageName   map[models.PackageID]string
	packageHeader map[models.PackageID]string
	priceLine     string // %s = formatted price range
	deliveryLine  string // %d, %d = delivery window in days
	featuresTitle string
	moreFeatures  string // %d = features not listed
	competitor    map[models.PackageID]string
	roi           map[models.PackageID]string
	payback       map[models.PackageID]string
	roiCustomers  string // %d = customers needed, %s = payback string

	tableTitle       string
	priceRowLabel    string
	deliveryRowLabel string
	deliveryDays     string // %d, %d = day window
	features         map[models.PackageID][]string
}

var lexicons = map[models.Locale]lexicon{
	models.LocaleCS: csLexicon,
	models.LocaleEN: enLexicon,
	models.LocaleDE: deLexicon,
	models.LocaleRU: ruLexicon,
}

var enLexicon = lexicon{
	bucket: map[Bucket]string{
		BucketExcellent: "Your website is in excellent shape and clearly ahead of most competitors.",
		BucketGood:      "Your website has a solid foundation, but a few areas keep it from performing at its best.",
		BucketFair:      "Your website needs work: several important areas fall short of what clients expect today.",
		BucketPoor:      "Your website is seriously holding your business back and needs a thorough overhaul.",
	},
	weakIntro: "The weakest areas are: ",
	closing:   "We would be happy to prepare an individual quote for your %s — the price always depends on the exact scope.",
	categoryLabel: map[models.Category]string{
		models.CategorySpeed:    "loading speed",
		models.CategoryMobile:   "mobile experience",
		models.CategorySecurity: "security",
		models.CategorySEO:      "search visibility",
		models.CategoryGEO:      "AI search readiness",
		models.CategoryDesign:   "design and conversions",
	},
	packageName: map[models.PackageID]string{
		models.PackageBasic:      "BASIC",
		models.PackagePremium:    "PREMIUM",
		models.PackageEnterprise: "ENTERPRISE",
	},
	packageHeader: map[models.PackageID]string{
		models.PackageBasic:      "BASIC — a fast, modern one-page site",
		models.PackagePremium:    "PREMIUM — a complete web presence that sells",
		models.PackageEnterprise: "ENTERPRISE — a custom build with everything included",
	},
	priceLine:     "Price: %s",
	deliveryLine:  "Delivery: %d–%d working days",
	featuresTitle: "What you get:",
	moreFeatures:  "…and %d more features in the full offer.",
	competitor: map[models.PackageID]string{
		models.PackageBasic:      "Agencies charge 30 000 – 60 000 Kč for a comparable site. With us you save up to 40%.",
		models.PackagePremium:    "Agencies charge 70 000 – 120 000 Kč for this scope. With us you save up to 50%.",
		models.PackageEnterprise: "Agency projects of this size run 150 000 – 300 000 Kč. With us you save up to 45%.",
	},
	roi: map[models.PackageID]string{
		models.PackageBasic:      "A single new regular client usually covers the monthly value of the site.",
		models.PackagePremium:    "Online booking alone typically brings enough extra appointments to repay the site within the first months.",
		models.PackageEnterprise: "With full SEO and AI-search coverage, the site becomes your main client acquisition channel.",
	},
	payback: map[models.PackageID]string{
		models.PackageBasic:      "2–3 months",
		models.PackagePremium:    "3–4 months",
		models.PackageEnterprise: "4–6 months",
	},
	roiCustomers:     "About %d new clients pay the package off; typical payback is %s.",
	tableTitle:       "Package comparison",
	priceRowLabel:    "Price",
	deliveryRowLabel: "Delivery",
	deliveryDays:     "%d–%d days",
	features: map[models.PackageID][]string{
		models.PackageBasic: {
			"Modern responsive one-page design",
			"Mobile-first layout",
			"HTTPS and security headers",
			"Basic on-page SEO",
			"Contact form and WhatsApp button",
			"Photo gallery",
		},
		models.PackagePremium: {
			"Custom multi-page design",
			"Mobile-first layout",
			"HTTPS and security headers",
			"Complete on-page SEO",
			"Structured data (LocalBusiness, FAQ)",
			"AI-search (GEO) optimization",
			"Online booking system",
			"WhatsApp and call buttons",
			"Price list and services pages",
			"Photo gallery with optimized images",
			"Google Business profile setup",
			"Basic copywriting in one language",
			"Analytics dashboard",
			"30 days of post-launch support",
		},
		models.PackageEnterprise: {
			"Fully custom design and branding",
			"Up to four language versions",
			"Complete technical and on-page SEO",
			"AI-search (GEO) optimization",
			"Online booking with reminders",
			"Professional copywriting",
			"Professional photography coordination",
			"Performance tuning to 90+ PageSpeed",
			"Priority support for 6 months",
			"Monthly analytics reports",
		},
	},
}

var csLexicon = lexicon{
	bucket: map[Bucket]string{
		BucketExcellent: "Váš web je ve výborné kondici a jasně předbíhá většinu konkurence.",
		BucketGood:      "Váš web má solidní základ, ale několik oblastí mu brání podávat nejlepší výkon.",
		BucketFair:      "Váš web potřebuje práci: několik důležitých oblastí zaostává za tím, co dnes klienti očekávají.",
		BucketPoor:      "Váš web vaše podnikání vážně brzdí a potřebuje důkladnou přestavbu.",
	},
	weakIntro: "Nejslabší oblasti jsou: ",
	closing:   "Rádi vám připravíme individuální nabídku pro váš %s — cena vždy závisí na přesném rozsahu.",
	categoryLabel: map[models.Category]string{
		models.CategorySpeed:    "rychlost načítání",
		models.CategoryMobile:   "zobrazení na mobilu",
		models.CategorySecurity: "zabezpečení",
		models.CategorySEO:      "viditelnost ve vyhledávačích",
		models.CategoryGEO:      "připravenost na AI vyhledávání",
		models.CategoryDesign:   "design a konverze",
	},
	packageName: map[models.PackageID]string{
		models.PackageBasic:      "BASIC",
		models.PackagePremium:    "PREMIUM",
		models.PackageEnterprise: "ENTERPRISE",
	},
	packageHeader: map[models.PackageID]string{
		models.PackageBasic:      "BASIC — rychlý a moderní jednostránkový web",
		models.PackagePremium:    "PREMIUM — kompletní webová prezentace, která prodává",
		models.PackageEnterprise: "ENTERPRISE — řešení na míru se vším všudy",
	},
	priceLine:     "Cena: %s",
	deliveryLine:  "Dodání: %d–%d pracovních dní",
	featuresTitle: "Co dostanete:",
	moreFeatures:  "…a dalších %d položek v kompletní nabídce.",
	competitor: map[models.PackageID]string{
		models.PackageBasic:      "Agentury si za srovnatelný web účtují 30 000 – 60 000 Kč. U nás ušetříte až 40 %.",
		models.PackagePremium:    "Agentury si za tento rozsah účtují 70 000 – 120 000 Kč. U nás ušetříte až 50 %.",
		models.PackageEnterprise: "Agenturní projekty této velikosti vycházejí na 150 000 – 300 000 Kč. U nás ušetříte až 45 %.",
	},
	roi: map[models.PackageID]string{
		models.PackageBasic:      "Jediný nový stálý klient obvykle pokryje měsíční hodnotu webu.",
		models.PackagePremium:    "Už samotná online rezervace typicky přinese tolik objednávek navíc, že se web zaplatí během prvních měsíců.",
		models.PackageEnterprise: "S kompletním SEO a pokrytím AI vyhledávání se web stane vaším hlavním kanálem pro získávání klientů.",
	},
	payback: map[models.PackageID]string{
		models.PackageBasic:      "2–3 měsíce",
		models.PackagePremium:    "3–4 měsíce",
		models.PackageEnterprise: "4–6 měsíců",
	},
	roiCustomers:     "Balíček zaplatí přibližně %d nových klientů; obvyklá návratnost je %s.",
	tableTitle:       "Srovnání balíčků",
	priceRowLabel:    "Cena",
	deliveryRowLabel: "Dodání",
	deliveryDays:     "%d–%d dní",
	features: map[models.PackageID][]string{
		models.PackageBasic: {
			"Moderní responzivní jednostránkový design",
			"Rozvržení mobile-first",
			"HTTPS a bezpečnostní hlavičky",
			"Základní on-page SEO",
			"Kontaktní formulář a tlačítko WhatsApp",
			"Fotogalerie",
		},
		models.PackagePremium: {
			"Vícestránkový design na míru",
			"Rozvržení mobile-first",
			"HTTPS a bezpečnostní hlavičky",
			"Kompletní on-page SEO",
			"Strukturovaná data (LocalBusiness, FAQ)",
			"Optimalizace pro AI vyhledávání (GEO)",
			"Online rezervační systém",
			"Tlačítka WhatsApp a volání",
			"Stránky s ceníkem a službami",
			"Fotogalerie s optimalizovanými snímky",
			"Nastavení profilu Google Business",
			"Základní copywriting v jednom jazyce",
			"Přehled návštěvnosti",
			"30 dní podpory po spuštění",
		},
		models.PackageEnterprise: {
			"Design a branding zcela na míru",
			"Až čtyři jazykové verze",
			"Kompletní technické i on-page SEO",
			"Optimalizace pro AI vyhledávání (GEO)",
			"Online rezervace s připomínkami",
			"Profesionální copywriting",
			"Koordinace profesionálního focení",
			"Ladění výkonu na PageSpeed 90+",
			"Přednostní podpora po 6 měsíců",
			"Měsíční reporty návštěvnosti",
		},
	},
}

var deLexicon = lexicon{
	bucket: map[Bucket]string{
		BucketExcellent: "Ihre Website ist in ausgezeichneter Verfassung und liegt klar vor den meisten Mitbewerbern.",
		BucketGood:      "Ihre Website hat ein solides Fundament, doch einige Bereiche verhindern die volle Leistung.",
		BucketFair:      "Ihre Website braucht Arbeit: mehrere wichtige Bereiche bleiben hinter dem zurück, was Kunden heute erwarten.",
		BucketPoor:      "Ihre Website bremst Ihr Geschäft erheblich und braucht eine gründliche Überarbeitung.",
	},
	weakIntro: "Die schwächsten Bereiche sind: ",
	closing:   "Gerne erstellen wir ein individuelles Angebot für Ihren %s — der Preis hängt immer vom genauen Umfang ab.",
	categoryLabel: map[models.Category]string{
		models.CategorySpeed:    "Ladegeschwindigkeit",
		models.CategoryMobile:   "mobile Darstellung",
		models.CategorySecurity: "Sicherheit",
		models.CategorySEO:      "Sichtbarkeit in Suchmaschinen",
		models.CategoryGEO:      "Bereitschaft für KI-Suche",
		models.CategoryDesign:   "Design und Konversion",
	},
	packageName: map[models.PackageID]string{
		models.PackageBasic:      "BASIC",
		models.PackagePremium:    "PREMIUM",
		models.PackageEnterprise: "ENTERPRISE",
	},
	packageHeader: map[models.PackageID]string{
		models.PackageBasic:      "BASIC — eine schnelle, moderne One-Page-Website",
		models.PackagePremium:    "PREMIUM — ein vollständiger Webauftritt, der verkauft",
		models.PackageEnterprise: "ENTERPRISE — eine Maßanfertigung mit allem Drum und Dran",
	},
	priceLine:     "Preis: %s",
	deliveryLine:  "Lieferung: %d–%d Werktage",
	featuresTitle: "Das bekommen Sie:",
	moreFeatures:  "…und %d weitere Leistungen im vollständigen Angebot.",
	competitor: map[models.PackageID]string{
		models.PackageBasic:      "Agenturen verlangen für eine vergleichbare Website 30 000 – 60 000 Kč. Bei uns sparen Sie bis zu 40 %.",
		models.PackagePremium:    "Agenturen verlangen für diesen Umfang 70 000 – 120 000 Kč. Bei uns sparen Sie bis zu 50 %.",
		models.PackageEnterprise: "Agenturprojekte dieser Größe kosten 150 000 – 300 000 Kč. Bei uns sparen Sie bis zu 45 %.",
	},
	roi: map[models.PackageID]string{
		models.PackageBasic:      "Ein einziger neuer Stammkunde deckt üblicherweise den Monatswert der Website.",
		models.PackagePremium:    "Allein die Online-Buchung bringt typischerweise genug zusätzliche Termine, um die Website in den ersten Monaten zu refinanzieren.",
		models.PackageEnterprise: "Mit vollständigem SEO und KI-Suche-Abdeckung wird die Website Ihr wichtigster Kanal zur Kundengewinnung.",
	},
	payback: map[models.PackageID]string{
		models.PackageBasic:      "2–3 Monate",
		models.PackagePremium:    "3–4 Monate",
		models.PackageEnterprise: "4–6 Monate",
	},
	roiCustomers:     "Rund %d neue Kunden zahlen das Paket ab; die übliche Amortisation beträgt %s.",
	tableTitle:       "Paketvergleich",
	priceRowLabel:    "Preis",
	deliveryRowLabel: "Lieferung",
	deliveryDays:     "%d–%d Tage",
	features: map[models.PackageID][]string{
		models.PackageBasic: {
			"Modernes responsives One-Page-Design",
			"Mobile-First-Layout",
			"HTTPS und Sicherheits-Header",
			"Grundlegendes On-Page-SEO",
			"Kontaktformular und WhatsApp-Button",
			"Fotogalerie",
		},
		models.PackagePremium: {
			"Individuelles mehrseitiges Design",
			"Mobile-First-Layout",
			"HTTPS und Sicherheits-Header",
			"Vollständiges On-Page-SEO",
			"Strukturierte Daten (LocalBusiness, FAQ)",
			"Optimierung für KI-Suche (GEO)",
			"Online-Buchungssystem",
			"WhatsApp- und Anruf-Buttons",
			"Preisliste und Leistungsseiten",
			"Fotogalerie mit optimierten Bildern",
			"Einrichtung des Google-Business-Profils",
			"Basis-Texterstellung in einer Sprache",
			"Besucherstatistik",
			"30 Tage Support nach dem Start",
		},
		models.PackageEnterprise: {
			"Vollständig individuelles Design und Branding",
			"Bis zu vier Sprachversionen",
			"Komplettes technisches und On-Page-SEO",
			"Optimierung für KI-Suche (GEO)",
			"Online-Buchung mit Erinnerungen",
			"Professionelle Texterstellung",
			"Koordination professioneller Fotografie",
			"Performance-Tuning auf PageSpeed 90+",
			"Prioritäts-Support für 6 Monate",
			"Monatliche Statistik-Reports",
		},
	},
}

var ruLexicon = lexicon{
	bucket: map[Bucket]string{
		BucketExcellent: "Ваш сайт в отличной форме и заметно опережает большинство конкурентов.",
		BucketGood:      "У вашего сайта крепкая основа, но несколько областей мешают ему работать в полную силу.",
		BucketFair:      "Вашему сайту нужна доработка: несколько важных областей не дотягивают до того, что клиенты ожидают сегодня.",
		BucketPoor:      "Ваш сайт серьёзно тормозит ваш бизнес и нуждается в основательной переработке.",
	},
	weakIntro: "Самые слабые области: ",
	closing:   "Мы с удовольствием подготовим индивидуальное предложение для вашего бизнеса (%s) — цена всегда зависит от точного объёма работ.",
	categoryLabel: map[models.Category]string{
		models.CategorySpeed:    "скорость загрузки",
		models.CategoryMobile:   "отображение на мобильных",
		models.CategorySecurity: "безопасность",
		models.CategorySEO:      "видимость в поисковиках",
		models.CategoryGEO:      "готовность к ИИ-поиску",
		models.CategoryDesign:   "дизайн и конверсия",
	},
	packageName: map[models.PackageID]string{
		models.PackageBasic:      "BASIC",
		models.PackagePremium:    "PREMIUM",
		models.PackageEnterprise: "ENTERPRISE",
	},
	packageHeader: map[models.PackageID]string{
		models.PackageBasic:      "BASIC — быстрый современный одностраничный сайт",
		models.PackagePremium:    "PREMIUM — полноценное веб-представительство, которое продаёт",
		models.PackageEnterprise: "ENTERPRISE — индивидуальная разработка со всем необходимым",
	},
	priceLine:     "Цена: %s",
	deliveryLine:  "Срок: %d–%d рабочих дней",
	featuresTitle: "Что вы получите:",
	moreFeatures:  "…и ещё %d пунктов в полном предложении.",
	competitor: map[models.PackageID]string{
		models.PackageBasic:      "Агентства берут за сопоставимый сайт 30 000 – 60 000 крон. С нами вы экономите до 40 %.",
		models.PackagePremium:    "Агентства берут за такой объём 70 000 – 120 000 крон. С нами вы экономите до 50 %.",
		models.PackageEnterprise: "Агентские проекты такого масштаба стоят 150 000 – 300 000 крон. С нами вы экономите до 45 %.",
	},
	roi: map[models.PackageID]string{
		models.PackageBasic:      "Один новый постоянный клиент обычно окупает месячную стоимость сайта.",
		models.PackagePremium:    "Одна лишь онлайн-запись обычно приносит столько дополнительных визитов, что сайт окупается за первые месяцы.",
		models.PackageEnterprise: "С полным SEO и охватом ИИ-поиска сайт станет вашим главным каналом привлечения клиентов.",
	},
	payback: map[models.PackageID]string{
		models.PackageBasic:      "2–3 месяца",
		models.PackagePremium:    "3–4 месяца",
		models.PackageEnterprise: "4–6 месяцев",
	},
	roiCustomers:     "Пакет окупают примерно %d новых клиентов; типичный срок окупаемости — %s.",
	tableTitle:       "Сравнение пакетов",
	priceRowLabel:    "Цена",
	deliveryRowLabel: "Срок",
	deliveryDays:     "%d–%d дней",
	features: map[models.PackageID][]string{
		models.PackageBasic: {
			"Современный адаптивный одностраничный дизайн",
			"Вёрстка mobile-first",
			"HTTPS и заголовки безопасности",
			"Базовое on-page SEO",
			"Контактная форма и кнопка WhatsApp",
			"Фотогалерея",
		},
		models.PackagePremium: {
			"Индивидуальный многостраничный дизайн",
			"Вёрстка mobile-first",
			"HTTPS и заголовки безопасности",
			"Полное on-page SEO",
			"Структурированные данные (LocalBusiness, FAQ)",
			"Оптимизация под ИИ-поиск (GEO)",
			"Система онлайн-записи",
			"Кнопки WhatsApp и звонка",
			"Страницы с прайсом и услугами",
			"Фотогалерея с оптимизированными снимками",
			"Настройка профиля Google Business",
			"Базовый копирайтинг на одном языке",
			"Статистика посещаемости",
			"30 дней поддержки после запуска",
		},
		models.PackageEnterprise: {
			"Полностью индивидуальный дизайн и брендинг",
			"До четырёх языковых версий",
			"Полное техническое и on-page SEO",
			"Оптимизация под ИИ-поиск (GEO)",
			"Онлайн-запись с напоминаниями",
			"Профессиональный копирайтинг",
			"Организация профессиональной фотосъёмки",
			"Оптимизация до PageSpeed 90+",
			"Приоритетная поддержка 6 месяцев",
			"Ежемесячные отчёты по посещаемости",
		},
	},
}

// capability is one row of the tier comparison table.
type capability struct {
	labels map[models.Locale]string
	avail  map[models.PackageID]bool
}

var capabilities = []capability{
	{
		labels: map[models.Locale]string{
			models.LocaleCS: "Responzivní design",
			models.LocaleEN: "Responsive design",
			models.LocaleDE: "Responsives Design",
			models.LocaleRU: "Адаптивный дизайн",
		},
		avail: map[models.PackageID]bool{models.PackageBasic: true, models.PackagePremium: true, models.PackageEnterprise: true},
	},
	{
		labels: map[models.Locale]string{
			models.LocaleCS: "HTTPS a zabezpečení",
			models.LocaleEN: "HTTPS and security",
			models.LocaleDE: "HTTPS und Sicherheit",
			models.LocaleRU: "HTTPS и безопасность",
		},
		avail: map[models.PackageID]bool{models.PackageBasic: true, models.PackagePremium: true, models.PackageEnterprise: true},
	},
	{
		labels: map[models.Locale]string{
			models.LocaleCS: "Kompletní on-page SEO",
			models.LocaleEN: "Complete on-page SEO",
			models.LocaleDE: "Vollständiges On-Page-SEO",
			models.LocaleRU: "Полное on-page SEO",
		},
		avail: map[models.PackageID]bool{models.PackagePremium: true, models.PackageEnterprise: true},
	},
	{
		labels: map[models.Locale]string{
			models.LocaleCS: "Optimalizace pro AI vyhledávání",
			models.LocaleEN: "AI-search (GEO) optimization",
			models.LocaleDE: "Optimierung für KI-Suche",
			models.LocaleRU: "Оптимизация под ИИ-поиск",
		},
		avail: map[models.PackageID]bool{models.PackagePremium: true, models.PackageEnterprise: true},
	},
	{
		labels: map[models.Locale]string{
			models.LocaleCS: "Online rezervace",
			models.LocaleEN: "Online booking",
			models.LocaleDE: "Online-Buchung",
			models.LocaleRU: "Онлайн-запись",
		},
		avail: map[models.PackageID]bool{models.PackagePremium: true, models.PackageEnterprise: true},
	},
	{
		labels: map[models.Locale]string{
			models.LocaleCS: "Vícejazyčné verze",
			models.LocaleEN: "Multiple languages",
			models.LocaleDE: "Mehrere Sprachen",
			models.LocaleRU: "Несколько языков",
		},
		avail: map[models.PackageID]bool{models.PackageEnterprise: true},
	},
	{
		labels: map[models.Locale]string{
			models.LocaleCS: "Profesionální copywriting",
			models.LocaleEN: "Professional copywriting",
			models.LocaleDE: "Professionelle Texte",
			models.LocaleRU: "Профессиональный копирайтинг",
		},
		avail: map[models.PackageID]bool{models.PackageEnterprise: true},
	},
	{
		labels: map[models.Locale]string{
			models.LocaleCS: "Podpora po spuštění",
			models.LocaleEN: "Post-launch support",
			models.LocaleDE: "Support nach dem Start",
			models.LocaleRU: "Поддержка после запуска",
		},
		avail: map[models.PackageID]bool{models.PackagePremium: true, models.PackageEnterprise: true},
	},
}
