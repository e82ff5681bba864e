package findings

import "fmt"

var enTemplates = map[key]template{
	keyLCPCritical: {
		title: static("Extremely slow page load"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("The main content takes %.1f seconds to appear. Most visitors give up after 3 seconds.", p.Seconds)
		}),
		impact: static("You are losing the majority of visitors before they see anything at all."),
	},
	keyLCPSlow: {
		title: static("Slow page load"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("The main content appears after %.1f seconds; the recommended limit is 2.5 seconds.", p.Seconds)
		}),
		impact: static("Impatient visitors leave for faster competitors."),
	},
	keyTTFBSlow: {
		title: static("Server responds slowly"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("The server needs %d ms to send the first byte; under 800 ms is expected.", p.Millis)
		}),
		impact: static("Every page on the site feels sluggish, and search engines notice too."),
	},
	keyPageSpeedCritical: {
		title: static("Very poor PageSpeed score"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Google rates the page %d out of 100. Scores under 50 are considered failing.", p.Score)
		}),
		impact: static("Google actively prefers faster sites in search results."),
	},
	keyPageSpeedLow: {
		title: static("Below-average PageSpeed score"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("Google rates the page %d out of 100; good sites score above 70.", p.Score)
		}),
		impact: static("A faster site ranks higher and converts better."),
	},

	keyViewportMissing: {
		title:       static("Site is not mobile-ready"),
		description: static("The page is missing the viewport meta tag, so phones display the desktop layout shrunk down."),
		impact:      static("Over 70% of your visitors browse on a phone and see an unusable page."),
	},
	keyHorizontalScroll: {
		title:       static("Page scrolls sideways on phones"),
		description: static("Content is wider than the screen, forcing visitors to scroll horizontally."),
		impact:      static("Sideways scrolling is the fastest way to make a mobile visitor leave."),
	},
	keyTouchTargets: {
		title:       static("Buttons are too small to tap"),
		description: static("Links and buttons sit too close together or are too small for a fingertip."),
		impact:      static("Visitors mis-tap, get frustrated and give up on contacting you."),
	},
	keyTextUnreadable: {
		title:       static("Text is too small on phones"),
		description: static("Body text renders below the readable size on mobile screens."),
		impact:      static("Visitors have to pinch-zoom to read anything, and most will not bother."),
	},

	keyNoHTTPS: {
		title:       static("Site runs without HTTPS"),
		description: static("The site is served over plain HTTP. Browsers mark it as \"Not secure\" right in the address bar."),
		impact:      static("The warning destroys trust instantly, and discreet clients care about privacy twice as much."),
	},
	keyMixedContent: {
		title:       static("Insecure content on a secure page"),
		description: static("The page loads some images or scripts over plain HTTP, which breaks the padlock icon."),
		impact:      static("Browsers may block the content or flag the page as unsafe."),
	},
	keyNoSecurityHeaders: {
		title:       static("Security headers missing"),
		description: static("Protective HTTP headers such as Content-Security-Policy are not set."),
		impact:      static("An easy hardening step that also signals professionalism to security-savvy clients."),
	},

	keyNoTitle: {
		title:       static("Page has no title"),
		description: static("The title tag is missing entirely, so search results show a bare URL instead of your offer."),
		impact:      static("The title is the single most important SEO element; without it you are invisible."),
	},
	keyTitleTooLong: {
		title: static("Page title is too long"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("The title is %d characters long; Google truncates anything over 70.", p.Length)
		}),
		impact: static("A cut-off title loses its call to action in search results."),
	},
	keyTitleTooShort: {
		title: static("Page title is too short"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("The title has only %d characters, wasting the space Google gives you.", p.Length)
		}),
		impact: static("A short generic title cannot compete with descriptive ones."),
	},
	keyNoMetaDescription: {
		title:       static("Meta description is missing"),
		description: static("Search engines have no summary to show, so they pick a random text snippet from the page."),
		impact:      static("You give up control over the first sentence potential clients read about you."),
	},
	keyNoH1: {
		title:       static("Main heading is missing"),
		description: static("The page has no H1 heading, so neither visitors nor search engines know its topic at a glance."),
		impact:      static("Search engines weigh the H1 heavily when ranking the page."),
	},
	keyMultipleH1: {
		title: static("Multiple main headings"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("The page contains %d H1 headings; exactly one is expected.", p.Count)
		}),
		impact: static("Competing headings dilute the page topic for search engines."),
	},
	keyAltTextCritical: {
		title: static("Most images lack descriptions"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("%d%% of images (%d in total) have no alt text.", p.Percent, p.Count)
		}),
		impact: static("Google image search cannot find you, and screen readers see nothing."),
	},
	keyAltTextLow: {
		title: static("Some images lack descriptions"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("%d images are missing alt text.", p.Count)
		}),
		impact: static("Missed traffic from image search and weaker accessibility."),
	},
	keyNoSitemap: {
		title:       static("Sitemap is missing"),
		description: static("No sitemap.xml was found, so search engines have to guess which pages exist."),
		impact:      static("New and updated pages get indexed slower or not at all."),
	},
	keyNoStructuredData: {
		title:       static("No structured data"),
		description: static("The page carries no schema.org markup describing the business."),
		impact:      static("Rich search results (stars, opening hours, prices) stay out of reach."),
	},

	keyNoFAQ: {
		title:       static("No FAQ or Q&A content"),
		description: static("The site answers no common questions in a question-and-answer format."),
		impact:      static("AI assistants such as ChatGPT quote Q&A content first; without it you are not cited."),
	},
	keyNoLocalBusiness: {
		title:       static("LocalBusiness schema missing"),
		description: static("The page does not describe the business with LocalBusiness structured data."),
		impact:      static("AI search and Google maps results cannot verify what, where and when you offer."),
	},
	keyNoAddressHours: {
		title:       static("Address and opening hours missing"),
		description: static("Neither an address nor opening hours appear anywhere on the page."),
		impact:      static("Clients searching \"near me\" and AI assistants cannot place or recommend you."),
	},
	keyNoPricing: {
		title:       static("No pricing information"),
		description: static("The page does not state prices or at least price ranges."),
		impact: dynamic(func(p Params) string {
			return fmt.Sprintf("Clients comparing a %s want a price first; without one they call the competition.", p.Label)
		}),
	},
	keyStaleContent: {
		title: static("Content looks outdated"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("The newest dated content is from %d.", p.Year)
		}),
		impact: static("Both clients and AI search prefer sites that show recent activity."),
	},
	keyGEOOpportunity: {
		title:       static("Untapped AI search visibility"),
		description: static("More and more clients ask ChatGPT and similar assistants for recommendations. Sites with FAQ content and LocalBusiness data get quoted; this one currently does not."),
		impact:      static("Early movers in AI search take clients from everyone who waits."),
	},

	keyCopyrightCritical: {
		title: static("Site looks abandoned"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("The footer copyright says %d — %d years ago.", p.Year, p.Years)
		}),
		impact: static("Visitors assume the business is closed and move on."),
	},
	keyCopyrightOld: {
		title: static("Copyright year is stale"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("The footer still says %d, which is %d years back.", p.Year, p.Years)
		}),
		impact: static("A small detail that quietly undermines trust in the whole site."),
	},
	keyNoBooking: {
		title:       static("No online booking"),
		description: static("Clients cannot book an appointment directly on the site."),
		impact:      static("Every booking requires a call, and calls outside opening hours are lost."),
	},
	keyNoContactOptions: {
		title:       static("No quick way to reach you"),
		description: static("The page offers neither a phone number nor WhatsApp."),
		impact:      static("A visitor who cannot contact you within seconds is a client lost to the next site."),
	},
	keyNoWhatsApp: {
		title:       static("WhatsApp contact missing"),
		description: static("There is a phone number but no WhatsApp link."),
		impact:      static("Many clients prefer writing discreetly over calling."),
	},
	keyUnclearPricing: {
		title:       static("Pricing is unclear"),
		description: static("Visitors cannot find out what your services cost."),
		impact:      static("Price uncertainty is one of the top reasons visitors leave without contacting."),
	},
	keyPageBuilder: {
		title: static("Site built with a generic page builder"),
		description: dynamic(func(p Params) string {
			return fmt.Sprintf("The site runs on %s, which limits speed, SEO and custom design.", p.Name)
		}),
		impact: static("Template sites look interchangeable and load slower than tailored ones."),
	},
}
