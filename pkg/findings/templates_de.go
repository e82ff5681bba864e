package findings

import "fmt"

var deTemplates = map[key]template{
	keyLCPCritical: {
		title: static("Extrem langsames Laden der Seite"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Der Hauptinhalt erscheint erst nach %.1f Sekunden. Die meisten Besucher geben nach 3 Sekunden auf.", p.Seconds)
		}),
		impact: static("Sie verlieren die Mehrheit der Besucher, bevor sie überhaupt etwas sehen."),
	},
	keyLCPSlow: {
		title: static("Langsames Laden der Seite"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Der Hauptinhalt erscheint nach %.1f Sekunden; empfohlen sind höchstens 2,5 Sekunden.", p.Seconds)
		}),
		impact: static("Ungeduldige Besucher wechseln zur schnelleren Konkurrenz."),
	},
	keyTTFBSlow: {
		title: static("Server antwortet langsam"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Der Server braucht %d ms bis zum ersten Byte; erwartet werden unter 800 ms.", p.Millis)
		}),
		impact: static("Die gesamte Website wirkt träge, und auch Suchmaschinen registrieren das."),
	},
	keyPageSpeedCritical: {
		title: static("Sehr schlechter PageSpeed-Wert"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Google bewertet die Seite mit %d von 100 Punkten. Werte unter 50 gelten als ungenügend.", p.Score)
		}),
		impact: static("Google bevorzugt schnellere Websites aktiv in den Suchergebnissen."),
	},
	keyPageSpeedLow: {
		title: static("Unterdurchschnittlicher PageSpeed-Wert"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Google bewertet die Seite mit %d von 100 Punkten; gute Websites liegen über 70.", p.Score)
		}),
		impact: static("Eine schnellere Website rankt höher und verkauft besser."),
	},

	keyViewportMissing: {
		title:       static("Website ist nicht mobiltauglich"),
		description: static("Der Seite fehlt das Viewport-Meta-Tag, daher zeigen Smartphones die verkleinerte Desktop-Ansicht."),
		impact:      static("Über 70 % Ihrer Besucher kommen vom Smartphone und sehen eine unbenutzbare Seite."),
	},
	keyHorizontalScroll: {
		title:       static("Seite scrollt auf dem Smartphone seitwärts"),
		description: static("Der Inhalt ist breiter als der Bildschirm und zwingt Besucher zum horizontalen Scrollen."),
		impact:      static("Seitliches Scrollen vertreibt mobile Besucher am schnellsten."),
	},
	keyTouchTargets: {
		title:       static("Schaltflächen sind zu klein zum Antippen"),
		description: static("Links und Schaltflächen liegen zu dicht beieinander oder sind zu klein für eine Fingerspitze."),
		impact:      static("Besucher vertippen sich, werden ungeduldig und geben die Kontaktaufnahme auf."),
	},
	keyTextUnreadable: {
		title:       static("Text ist auf dem Smartphone zu klein"),
		description: static("Der Fließtext wird auf mobilen Bildschirmen unterhalb der lesbaren Größe dargestellt."),
		impact:      static("Besucher müssen zum Lesen zoomen, und die meisten tun das nicht."),
	},

	keyNoHTTPS: {
		title:       static("Website läuft ohne HTTPS"),
		description: static("Die Website wird über unverschlüsseltes HTTP ausgeliefert. Browser markieren sie direkt in der Adressleiste als „Nicht sicher“."),
		impact:      static("Die Warnung zerstört sofort Vertrauen, und diskrete Kundschaft achtet doppelt auf Privatsphäre."),
	},
	keyMixedContent: {
		title:       static("Unsichere Inhalte auf sicherer Seite"),
		description: static("Einige Bilder oder Skripte werden über einfaches HTTP geladen, was das Schloss-Symbol aufhebt."),
		impact:      static("Browser können die Inhalte blockieren oder die Seite als riskant markieren."),
	},
	keyNoSecurityHeaders: {
		title:       static("Sicherheits-Header fehlen"),
		description: static("Schützende HTTP-Header wie Content-Security-Policy sind nicht gesetzt."),
		impact:      static("Eine einfache Härtung, die zudem bei sicherheitsbewussten Kunden professionell wirkt."),
	},

	keyNoTitle: {
		title:       static("Seite hat keinen Titel"),
		description: static("Das Title-Tag fehlt vollständig; Suchergebnisse zeigen eine nackte URL statt Ihres Angebots."),
		impact:      static("Der Titel ist das wichtigste SEO-Element; ohne ihn sind Sie unsichtbar."),
	},
	keyTitleTooLong: {
		title: static("Seitentitel ist zu lang"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Der Titel ist %d Zeichen lang; Google schneidet alles über 70 Zeichen ab.", p.Length)
		}),
		impact: static("Ein abgeschnittener Titel verliert in den Suchergebnissen seine Botschaft."),
	},
	keyTitleTooShort: {
		title: static("Seitentitel ist zu kurz"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Der Titel hat nur %d Zeichen und verschenkt den Platz, den Google bietet.", p.Length)
		}),
		impact: static("Ein kurzer, generischer Titel kann mit beschreibenden Titeln nicht konkurrieren."),
	},
	keyNoMetaDescription: {
		title:       static("Meta-Beschreibung fehlt"),
		description: static("Suchmaschinen haben keine Zusammenfassung und wählen einen zufälligen Textausschnitt der Seite."),
		impact:      static("Sie geben die Kontrolle über den ersten Satz ab, den potenzielle Kunden über Sie lesen."),
	},
	keyNoH1: {
		title:       static("Hauptüberschrift fehlt"),
		description: static("Die Seite hat keine H1-Überschrift; weder Besucher noch Suchmaschinen erkennen das Thema auf einen Blick."),
		impact:      static("Suchmaschinen gewichten die H1 beim Ranking stark."),
	},
	keyMultipleH1: {
		title: static("Mehrere Hauptüberschriften"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Die Seite enthält %d H1-Überschriften; erwartet wird genau eine.", p.Count)
		}),
		impact: static("Konkurrierende Überschriften verwässern das Seitenthema für Suchmaschinen."),
	},
	keyAltTextCritical: {
		title: static("Die meisten Bilder haben keine Beschreibung"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("%d %% der Bilder (insgesamt %d) haben keinen Alt-Text.", p.Percent, p.Count)
		}),
		impact: static("Die Google-Bildersuche findet Sie nicht, und Screenreader sehen nichts."),
	},
	keyAltTextLow: {
		title: static("Einige Bilder haben keine Beschreibung"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Bei %d Bildern fehlt der Alt-Text.", p.Count)
		}),
		impact: static("Entgangener Traffic aus der Bildersuche und schwächere Barrierefreiheit."),
	},
	keyNoSitemap: {
		title:       static("Sitemap fehlt"),
		description: static("Keine sitemap.xml gefunden; Suchmaschinen müssen raten, welche Seiten existieren."),
		impact:      static("Neue und geänderte Seiten werden langsamer oder gar nicht indexiert."),
	},
	keyNoStructuredData: {
		title:       static("Keine strukturierten Daten"),
		description: static("Die Seite trägt kein schema.org-Markup, das das Geschäft beschreibt."),
		impact:      static("Erweiterte Suchergebnisse (Sterne, Öffnungszeiten, Preise) bleiben unerreichbar."),
	},

	keyNoFAQ: {
		title:       static("Keine FAQ- oder Frage-Antwort-Inhalte"),
		description: static("Die Website beantwortet keine häufigen Fragen im Frage-Antwort-Format."),
		impact:      static("KI-Assistenten wie ChatGPT zitieren bevorzugt Q&A-Inhalte; ohne sie werden Sie nicht genannt."),
	},
	keyNoLocalBusiness: {
		title:       static("LocalBusiness-Schema fehlt"),
		description: static("Die Seite beschreibt das Geschäft nicht mit LocalBusiness-Strukturdaten."),
		impact:      static("KI-Suche und Google Maps können nicht prüfen, was, wo und wann Sie anbieten."),
	},
	keyNoAddressHours: {
		title:       static("Adresse und Öffnungszeiten fehlen"),
		description: static("Weder eine Adresse noch Öffnungszeiten sind auf der Seite zu finden."),
		impact:      static("Kunden mit „in meiner Nähe“-Suchen und KI-Assistenten können Sie weder einordnen noch empfehlen."),
	},
	keyNoPricing: {
		title:       static("Keine Preisangaben"),
		description: static("Die Seite nennt weder Preise noch Preisspannen."),
		impact: dynamic(func(p Params) string {
			return fmt.Sprintf("Kunden, die einen %s vergleichen, wollen zuerst einen Preis; ohne ihn rufen sie die Konkurrenz an.", p.Label)
		}),
	},
	keyStaleContent: {
		title: static("Inhalte wirken veraltet"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Der neueste datierte Inhalt stammt aus dem Jahr %d.", p.Year)
		}),
		impact: static("Kunden wie KI-Suche bevorzugen Websites mit aktueller Aktivität."),
	},
	keyGEOOpportunity: {
		title:       static("Ungenutzte Sichtbarkeit in der KI-Suche"),
		description: static("Immer mehr Kunden fragen ChatGPT und ähnliche Assistenten nach Empfehlungen. Zitiert werden Websites mit FAQ-Inhalten und LocalBusiness-Daten; diese bisher nicht."),
		impact:      static("Wer in der KI-Suche zuerst sichtbar ist, übernimmt die Kunden aller Zögernden."),
	},

	keyCopyrightCritical: {
		title: static("Website wirkt verlassen"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Das Copyright im Footer nennt %d — das ist %d Jahre her.", p.Year, p.Years)
		}),
		impact: static("Besucher nehmen an, das Geschäft sei geschlossen, und ziehen weiter."),
	},
	keyCopyrightOld: {
		title: static("Copyright-Jahr ist veraltet"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Im Footer steht noch %d, also %d Jahre zurück.", p.Year, p.Years)
		}),
		impact: static("Ein Detail, das leise das Vertrauen in die gesamte Website untergräbt."),
	},
	keyNoBooking: {
		title:       static("Keine Online-Buchung"),
		description: static("Kunden können keinen Termin direkt auf der Website buchen."),
		impact:      static("Jede Buchung erfordert einen Anruf, und Anrufe außerhalb der Öffnungszeiten gehen verloren."),
	},
	keyNoContactOptions: {
		title:       static("Kein schneller Kontaktweg"),
		description: static("Die Seite bietet weder Telefonnummer noch WhatsApp."),
		impact:      static("Ein Besucher, der Sie nicht binnen Sekunden erreicht, ist ein Kunde der nächsten Website."),
	},
	keyNoWhatsApp: {
		title:       static("WhatsApp-Kontakt fehlt"),
		description: static("Es gibt eine Telefonnummer, aber keinen WhatsApp-Link."),
		impact:      static("Viele Kunden schreiben lieber diskret, statt anzurufen."),
	},
	keyUnclearPricing: {
		title:       static("Preise sind unklar"),
		description: static("Besucher erfahren nicht, was Ihre Leistungen kosten."),
		impact:      static("Preisunsicherheit ist einer der häufigsten Gründe, ohne Kontakt zu gehen."),
	},
	keyPageBuilder: {
		title: static("Website mit Baukasten erstellt"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Die Website läuft auf %s, was Geschwindigkeit, SEO und individuelles Design einschränkt.", p.Name)
		}),
		impact: static("Baukasten-Websites wirken austauschbar und laden langsamer als maßgeschneiderte."),
	},
}
