package findings

import "fmt"

var csTemplates = map[key]template{
	keyLCPCritical: {
		title: static("Extrémně pomalé načítání stránky"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Hlavní obsah se zobrazí až za %.1f sekundy. Většina návštěvníků odchází po 3 sekundách.", p.Seconds)
		}),
		impact: static("Přicházíte o většinu návštěvníků dřív, než vůbec něco uvidí."),
	},
	keyLCPSlow: {
		title: static("Pomalé načítání stránky"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Hlavní obsah se zobrazí za %.1f sekundy; doporučený limit je 2,5 sekundy.", p.Seconds)
		}),
		impact: static("Netrpěliví návštěvníci odcházejí k rychlejší konkurenci."),
	},
	keyTTFBSlow: {
		title: static("Server odpovídá pomalu"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Server potřebuje %d ms na odeslání prvního bajtu; očekává se méně než 800 ms.", p.Millis)
		}),
		impact: static("Celý web působí těžkopádně a všímají si toho i vyhledávače."),
	},
	keyPageSpeedCritical: {
		title: static("Velmi špatné skóre PageSpeed"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Google hodnotí stránku %d body ze 100. Skóre pod 50 se považuje za nevyhovující.", p.Score)
		}),
		impact: static("Google ve výsledcích vyhledávání aktivně upřednostňuje rychlejší weby."),
	},
	keyPageSpeedLow: {
		title: static("Podprůměrné skóre PageSpeed"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Google hodnotí stránku %d body ze 100; dobré weby mají přes 70.", p.Score)
		}),
		impact: static("Rychlejší web se umísťuje výš a lépe prodává."),
	},

	keyViewportMissing: {
		title:       static("Web není připraven na mobily"),
		description: static("Stránce chybí meta tag viewport, takže telefony zobrazují zmenšenou verzi pro počítač."),
		impact:      static("Přes 70 % vašich návštěvníků přichází z telefonu a vidí nepoužitelnou stránku."),
	},
	keyHorizontalScroll: {
		title:       static("Stránka na telefonu ujíždí do stran"),
		description: static("Obsah je širší než obrazovka a nutí návštěvníky posouvat do stran."),
		impact:      static("Vodorovné posouvání je nejrychlejší způsob, jak mobilního návštěvníka odradit."),
	},
	keyTouchTargets: {
		title:       static("Tlačítka jsou na dotyk příliš malá"),
		description: static("Odkazy a tlačítka jsou příliš malé nebo příliš blízko u sebe."),
		impact:      static("Návštěvníci se překlikávají, ztrácejí trpělivost a vzdávají kontakt."),
	},
	keyTextUnreadable: {
		title:       static("Text je na telefonu příliš malý"),
		description: static("Základní text se na mobilních obrazovkách zobrazuje pod čitelnou velikostí."),
		impact:      static("Návštěvníci musí text přibližovat prsty a většina to vzdá."),
	},

	keyNoHTTPS: {
		title:       static("Web běží bez HTTPS"),
		description: static("Web se načítá přes nezabezpečené HTTP. Prohlížeče jej přímo v adresním řádku označují jako „Nezabezpečeno“."),
		impact:      static("Varování okamžitě ničí důvěru a diskrétní klientela dbá na soukromí dvojnásob."),
	},
	keyMixedContent: {
		title:       static("Nezabezpečený obsah na zabezpečené stránce"),
		description: static("Část obrázků nebo skriptů se načítá přes obyčejné HTTP, což ruší ikonu zámku."),
		impact:      static("Prohlížeče mohou obsah zablokovat nebo stránku označit jako rizikovou."),
	},
	keyNoSecurityHeaders: {
		title:       static("Chybí bezpečnostní hlavičky"),
		description: static("Ochranné HTTP hlavičky jako Content-Security-Policy nejsou nastavené."),
		impact:      static("Snadné vylepšení, které zároveň působí profesionálně na opatrnější klienty."),
	},

	keyNoTitle: {
		title:       static("Stránka nemá titulek"),
		description: static("Tag title úplně chybí, takže výsledky vyhledávání zobrazují holou adresu místo vaší nabídky."),
		impact:      static("Titulek je nejdůležitější SEO prvek; bez něj jste neviditelní."),
	},
	keyTitleTooLong: {
		title: static("Titulek stránky je příliš dlouhý"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Titulek má %d znaků; Google ořezává vše nad 70 znaků.", p.Length)
		}),
		impact: static("Oříznutý titulek ztrácí ve výsledcích vyhledávání svou pointu."),
	},
	keyTitleTooShort: {
		title: static("Titulek stránky je příliš krátký"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Titulek má jen %d znaků a nevyužívá prostor, který Google nabízí.", p.Length)
		}),
		impact: static("Krátký obecný titulek nemůže konkurovat popisným titulkům."),
	},
	keyNoMetaDescription: {
		title:       static("Chybí meta popisek"),
		description: static("Vyhledávače nemají co zobrazit, a tak vybírají náhodný úryvek textu ze stránky."),
		impact:      static("Vzdáváte se kontroly nad první větou, kterou si o vás potenciální klient přečte."),
	},
	keyNoH1: {
		title:       static("Chybí hlavní nadpis"),
		description: static("Stránka nemá nadpis H1, takže návštěvníci ani vyhledávače na první pohled nevědí, o čem je."),
		impact:      static("Vyhledávače přikládají nadpisu H1 při řazení velkou váhu."),
	},
	keyMultipleH1: {
		title: static("Více hlavních nadpisů"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Stránka obsahuje %d nadpisů H1; očekává se právě jeden.", p.Count)
		}),
		impact: static("Konkurující si nadpisy rozmělňují téma stránky pro vyhledávače."),
	},
	keyAltTextCritical: {
		title: static("Většina obrázků nemá popisky"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("%d %% obrázků (celkem %d) nemá alternativní text.", p.Percent, p.Count)
		}),
		impact: static("Vyhledávání obrázků Google vás nenajde a čtečky pro nevidomé nevidí nic."),
	},
	keyAltTextLow: {
		title: static("Část obrázků nemá popisky"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("U %d obrázků chybí alternativní text.", p.Count)
		}),
		impact: static("Přicházíte o návštěvnost z vyhledávání obrázků a o přístupnost."),
	},
	keyNoSitemap: {
		title:       static("Chybí sitemap"),
		description: static("Soubor sitemap.xml nebyl nalezen, vyhledávače tedy musí hádat, jaké stránky existují."),
		impact:      static("Nové a upravené stránky se indexují pomaleji, nebo vůbec."),
	},
	keyNoStructuredData: {
		title:       static("Chybí strukturovaná data"),
		description: static("Stránka neobsahuje žádné značky schema.org popisující podnik."),
		impact:      static("Rozšířené výsledky vyhledávání (hvězdičky, otevírací doba, ceny) zůstávají nedostupné."),
	},

	keyNoFAQ: {
		title:       static("Chybí sekce častých dotazů"),
		description: static("Web neodpovídá na běžné otázky formou otázka–odpověď."),
		impact:      static("AI asistenti jako ChatGPT citují přednostně obsah ve formátu Q&A; bez něj vás necitují."),
	},
	keyNoLocalBusiness: {
		title:       static("Chybí schéma LocalBusiness"),
		description: static("Stránka nepopisuje podnik strukturovanými daty LocalBusiness."),
		impact:      static("AI vyhledávání ani mapy Google si nemohou ověřit, co, kde a kdy nabízíte."),
	},
	keyNoAddressHours: {
		title:       static("Chybí adresa i otevírací doba"),
		description: static("Na stránce není uvedena adresa ani otevírací doba."),
		impact:      static("Klienti hledající „v okolí“ ani AI asistenti vás nedokážou zařadit a doporučit."),
	},
	keyNoPricing: {
		title:       static("Chybí informace o cenách"),
		description: static("Stránka neuvádí ceny ani cenová rozpětí."),
		impact: dynamic(func(p Params) string {
			return fmt.Sprintf("Klienti porovnávající %s chtějí nejdřív cenu; bez ní volají konkurenci.", p.Label)
		}),
	},
	keyStaleContent: {
		title: static("Obsah působí zastarale"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Nejnovější datovaný obsah pochází z roku %d.", p.Year)
		}),
		impact: static("Klienti i AI vyhledávání dávají přednost webům s čerstvou aktivitou."),
	},
	keyGEOOpportunity: {
		title:       static("Nevyužitá viditelnost v AI vyhledávání"),
		description: static("Stále více klientů se ptá ChatGPT a podobných asistentů na doporučení. Citovány jsou weby s FAQ obsahem a daty LocalBusiness; tento zatím ne."),
		impact:      static("Kdo v AI vyhledávání vykročí první, přebírá klienty všem, kdo čekají."),
	},

	keyCopyrightCritical: {
		title: static("Web působí opuštěně"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Copyright v patičce uvádí rok %d — to je %d let zpátky.", p.Year, p.Years)
		}),
		impact: static("Návštěvníci předpokládají, že podnik už nefunguje, a jdou jinam."),
	},
	keyCopyrightOld: {
		title: static("Rok v copyrightu je zastaralý"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("V patičce je stále rok %d, tedy %d let nazpět.", p.Year, p.Years)
		}),
		impact: static("Drobnost, která tiše podkopává důvěru v celý web."),
	},
	keyNoBooking: {
		title:       static("Chybí online rezervace"),
		description: static("Klienti se nemohou objednat přímo na webu."),
		impact:      static("Každá objednávka vyžaduje telefonát a hovory mimo otevírací dobu propadají."),
	},
	keyNoContactOptions: {
		title:       static("Chybí rychlý způsob kontaktu"),
		description: static("Stránka nenabízí telefonní číslo ani WhatsApp."),
		impact:      static("Návštěvník, který vás nemůže kontaktovat během pár sekund, je klient ztracený ve prospěch dalšího webu."),
	},
	keyNoWhatsApp: {
		title:       static("Chybí kontakt přes WhatsApp"),
		description: static("Telefonní číslo na webu je, ale odkaz na WhatsApp chybí."),
		impact:      static("Řada klientů dává přednost diskrétnímu psaní před voláním."),
	},
	keyUnclearPricing: {
		title:       static("Nejasné ceny"),
		description: static("Návštěvníci se nedozvědí, kolik vaše služby stojí."),
		impact:      static("Nejistota ohledně ceny je jeden z hlavních důvodů, proč návštěvníci odcházejí bez kontaktu."),
	},
	keyPageBuilder: {
		title: static("Web postavený na šablonovém editoru"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Web běží na službě %s, která omezuje rychlost, SEO i design na míru.", p.Name)
		}),
		impact: static("Šablonové weby působí zaměnitelně a načítají se pomaleji než weby na míru."),
	},
}
