package taxonomy

// Default returns the built-in taxonomy. Declaration order is load-bearing:
// it is the tie-break order for classification, so entries must not be
// reordered casually.
func Default() *Taxonomy {
	return MustNew(defaultCategories())
}

func defaultCategories() []Category {
	return []Category{
		{
			Name:        "AI & Machine Learning",
			Description: "Artificial intelligence, machine learning, LLMs, neural networks, deep learning tools and services",
			Domains: []string{
				"openai.com", "anthropic.com", "claude.ai", "chatgpt.com",
				"perplexity.ai", "character.ai", "midjourney.com", "stability.ai",
				"huggingface.co", "replicate.com", "cohere.ai", "scale.ai",
				"wandb.ai", "roboflow.com", "kaggle.com", "paperswithcode.com",
				"bard.google.com", "gemini.google.com", "deepmind.com",
			},
			Keywords: []string{
				"ai", "artificial-intelligence", "machine learning", "machine-learning",
				"deep-learning", "neural", "gpt", "llm", "transformer", "diffusion",
			},
		},
		{
			Name:        "Programming & Development",
			Description: "Code repositories, programming languages, IDEs, development tools, version control",
			Domains: []string{
				"github.com", "gitlab.com", "bitbucket.org", "stackoverflow.com",
				"npmjs.com", "pypi.org", "dev.to", "jenkins.io", "circleci.com",
				"travis-ci.org", "heroku.com", "vercel.com", "netlify.com",
			},
			Keywords: []string{
				"code", "programming", "developer", "software", "api", "sdk",
				"framework", "library", "repository",
			},
		},
		{
			Name:        "Cloud & DevOps",
			Description: "Cloud platforms, infrastructure, containers, CI/CD, monitoring, deployment tools",
			Domains: []string{
				"aws.amazon.com", "cloud.google.com", "console.cloud.google.com",
				"azure.microsoft.com", "portal.azure.com", "cloud.ibm.com",
				"docker.com", "kubernetes.io", "terraform.io", "digitalocean.com",
				"linode.com", "vultr.com", "datadog.com", "newrelic.com",
				"splunk.com", "elastic.co", "grafana.com",
			},
			Keywords: []string{
				"cloud", "devops", "infrastructure", "monitoring", "observability",
				"container", "orchestration", "kubernetes",
			},
		},
		{
			Name:        "Web Development",
			Description: "Frontend, backend, web frameworks, CSS, JavaScript, web design tools",
			Domains: []string{
				"css-tricks.com", "smashingmagazine.com", "codepen.io",
				"jsfiddle.net", "caniuse.com", "web.dev",
			},
			Keywords: []string{
				"javascript", "typescript", "css", "html", "frontend", "backend",
				"webpack", "react", "vue", "angular",
			},
		},
		{
			Name:        "Mobile Development",
			Description: "iOS, Android, React Native, Flutter, mobile app development",
			Domains: []string{
				"developer.apple.com", "developer.android.com", "flutter.dev",
				"reactnative.dev",
			},
			Keywords: []string{
				"ios", "android", "swift", "kotlin", "flutter", "mobile-app",
			},
		},
		{
			Name:        "Data Science & Analytics",
			Description: "Data analysis, visualization, statistics, big data, jupyter notebooks",
			Domains: []string{
				"jupyter.org", "anaconda.com", "tableau.com", "databricks.com",
				"snowflake.com", "mixpanel.com", "amplitude.com", "segment.com",
				"analytics.google.com",
			},
			Keywords: []string{
				"data-science", "analytics", "visualization", "statistics",
				"pandas", "jupyter", "big-data",
			},
		},
		{
			Name:        "Cybersecurity",
			Description: "Security tools, vulnerability scanning, encryption, pentesting, infosec",
			Domains: []string{
				"krebsonsecurity.com", "bleepingcomputer.com", "owasp.org",
				"nvd.nist.gov", "cve.org", "hackerone.com", "bugcrowd.com",
			},
			Keywords: []string{
				"security", "vulnerability", "encryption", "pentest", "infosec",
				"malware", "exploit",
			},
		},
		{
			Name:        "Blockchain & Crypto",
			Description: "Cryptocurrency, DeFi, NFTs, blockchain platforms, web3",
			Domains: []string{
				"coinbase.com", "binance.com", "kraken.com", "etherscan.io",
				"coinmarketcap.com", "coingecko.com", "opensea.io",
			},
			Keywords: []string{
				"crypto", "bitcoin", "ethereum", "blockchain", "defi", "nft", "web3",
			},
		},
		{
			Name:        "Business & Management",
			Description: "Business strategy, consulting, management tools, entrepreneurship",
			Domains: []string{
				"mckinsey.com", "bcg.com", "bain.com", "deloitte.com", "pwc.com",
				"ey.com", "kpmg.com", "accenture.com", "hbr.org", "a16z.com",
				"ycombinator.com", "crunchbase.com", "pitchbook.com",
				"angellist.com", "producthunt.com",
			},
			Keywords: []string{
				"business", "strategy", "consulting", "management", "startup",
				"entrepreneur", "venture",
			},
		},
		{
			Name:        "Finance & Investment",
			Description: "Trading, stocks, banking, personal finance, investment platforms",
			Domains: []string{
				"chase.com", "bankofamerica.com", "wellsfargo.com", "citi.com",
				"americanexpress.com", "paypal.com", "venmo.com", "stripe.com",
				"quickbooks.intuit.com", "mint.com", "fidelity.com",
				"vanguard.com", "schwab.com", "etrade.com", "robinhood.com",
				"marketwatch.com",
			},
			Keywords: []string{
				"finance", "banking", "investment", "trading", "stock", "payment",
				"portfolio",
			},
		},
		{
			Name:        "Marketing & Sales",
			Description: "Digital marketing, SEO, advertising, CRM, social media marketing",
			Domains: []string{
				"hubspot.com", "mailchimp.com", "salesforce.com", "semrush.com",
				"ahrefs.com", "moz.com", "hootsuite.com", "buffer.com",
			},
			Keywords: []string{
				"marketing", "seo", "advertising", "crm", "campaign", "conversion",
			},
		},
		{
			Name:        "E-commerce & Shopping",
			Description: "Online stores, marketplaces, shopping platforms, deals",
			Domains: []string{
				"amazon.com", "ebay.com", "etsy.com", "alibaba.com", "walmart.com",
				"target.com", "bestbuy.com", "costco.com", "homedepot.com",
				"lowes.com", "wayfair.com", "overstock.com", "newegg.com",
				"shopify.com", "woocommerce.com",
			},
			Keywords: []string{
				"shop", "store", "buy", "purchase", "product", "marketplace", "deal",
			},
		},
		{
			Name:        "News & Media",
			Description: "News sites, journalism, media outlets, current events",
			Domains: []string{
				"nytimes.com", "wsj.com", "washingtonpost.com", "bloomberg.com",
				"reuters.com", "apnews.com", "bbc.com", "cnn.com", "foxnews.com",
				"theguardian.com", "economist.com", "ft.com", "politico.com",
				"thehill.com", "axios.com", "vox.com", "usatoday.com",
				"forbes.com", "businessinsider.com", "fortune.com", "cnbc.com",
				"techcrunch.com", "theverge.com", "wired.com", "arstechnica.com",
				"engadget.com", "venturebeat.com", "zdnet.com", "cnet.com",
				"news.ycombinator.com", "slashdot.org",
			},
			Keywords: []string{
				"news", "article", "report", "analysis", "opinion", "editorial",
			},
		},
		{
			Name:        "Education & Learning",
			Description: "Online courses, tutorials, educational platforms, MOOCs",
			Domains: []string{
				"coursera.org", "udemy.com", "edx.org", "udacity.com",
				"khanacademy.org", "pluralsight.com", "skillshare.com",
				"masterclass.com", "brilliant.org", "codecademy.com",
				"datacamp.com", "freecodecamp.org", "w3schools.com",
				"tutorialspoint.com", "geeksforgeeks.org", "leetcode.com",
				"hackerrank.com",
			},
			Keywords: []string{
				"tutorial", "course", "learn", "education", "training",
				"certification", "mooc",
			},
		},
		{
			Name:        "Health & Medical",
			Description: "Health information, medical resources, fitness, wellness, mental health",
			Domains: []string{
				"webmd.com", "mayoclinic.org", "healthline.com", "nih.gov",
				"cdc.gov", "who.int", "myfitnesspal.com",
			},
			Keywords: []string{
				"health", "medical", "doctor", "medicine", "fitness", "wellness",
			},
		},
		{
			Name:        "Food & Cooking",
			Description: "Recipes, restaurants, food delivery, cooking tutorials",
			Domains: []string{
				"allrecipes.com", "foodnetwork.com", "seriouseats.com",
				"bonappetit.com", "epicurious.com", "yelp.com", "doordash.com",
				"ubereats.com", "grubhub.com",
			},
			Keywords: []string{
				"recipe", "cooking", "restaurant", "food", "baking",
			},
		},
		{
			Name:        "Travel & Tourism",
			Description: "Travel booking, destinations, hotels, flights, travel guides",
			Domains: []string{
				"booking.com", "expedia.com", "airbnb.com", "tripadvisor.com",
				"kayak.com", "skyscanner.com", "hotels.com", "lonelyplanet.com",
			},
			Keywords: []string{
				"travel", "flight", "hotel", "vacation", "destination", "itinerary",
			},
		},
		{
			Name:        "Entertainment",
			Description: "Movies, TV, music, gaming, streaming services",
			Domains: []string{
				"youtube.com", "netflix.com", "hulu.com", "disneyplus.com",
				"hbomax.com", "primevideo.com", "spotify.com", "soundcloud.com",
				"twitch.tv", "vimeo.com", "dailymotion.com", "tiktok.com",
				"imdb.com", "rottentomatoes.com", "metacritic.com", "steam",
			},
			Keywords: []string{
				"video", "music", "movie", "show", "stream", "gaming",
				"entertainment",
			},
		},
		{
			Name:        "Social Media & Forums",
			Description: "Social networks, discussion forums, community platforms",
			Domains: []string{
				"linkedin.com", "twitter.com", "x.com", "facebook.com",
				"instagram.com", "reddit.com", "pinterest.com", "tumblr.com",
				"discord.com", "slack.com", "teams.microsoft.com", "mastodon",
			},
			Keywords: []string{
				"social", "community", "forum", "discussion",
			},
		},
		{
			Name:        "Productivity Tools",
			Description: "Task management, note-taking, collaboration tools, time tracking",
			Domains: []string{
				"notion.so", "evernote.com", "todoist.com", "trello.com",
				"asana.com", "monday.com", "clickup.com", "airtable.com",
				"zapier.com", "ifttt.com", "calendly.com", "doodle.com",
				"grammarly.com", "docs.google.com", "drive.google.com",
				"sheets.google.com", "slides.google.com", "keep.google.com",
				"calendar.google.com", "dropbox.com", "jira.atlassian.com",
			},
			Keywords: []string{
				"productivity", "workflow", "automation", "collaboration",
				"note-taking", "task",
			},
		},
		{
			Name:        "Design & Creative",
			Description: "Graphic design, UI/UX, photography, art, creative tools",
			Domains: []string{
				"figma.com", "canva.com", "miro.com", "dribbble.com",
				"behance.net", "unsplash.com", "pexels.com", "adobe.com",
			},
			Keywords: []string{
				"design", "ui", "ux", "creative", "art", "graphics", "photography",
			},
		},
		{
			Name:        "Science & Research",
			Description: "Academic papers, scientific resources, research tools",
			Domains: []string{
				"arxiv.org", "scholar.google.com", "nature.com", "science.org",
				"sciencedirect.com", "springer.com", "wiley.com",
				"pubmed.ncbi.nlm.nih.gov", "jstor.org", "acm.org", "ieee.org",
				"researchgate.net", "academia.edu", "semanticscholar.org",
				"biorxiv.org", "ssrn.com", "doi.org",
			},
			Keywords: []string{
				"research", "paper", "study", "journal", "publication", "academic",
				"preprint",
			},
		},
		{
			Name:        "Government & Legal",
			Description: "Government services, legal resources, policy, regulations",
			Domains: []string{
				"irs.gov", "usa.gov", "congress.gov", "supremecourt.gov",
				"courtlistener.com", "law.cornell.edu",
			},
			Keywords: []string{
				"government", "legal", "law", "policy", "regulation", "statute",
			},
		},
		{
			Name:        "Real Estate",
			Description: "Property listings, real estate platforms, home buying and selling",
			Domains: []string{
				"zillow.com", "redfin.com", "realtor.com", "trulia.com",
				"apartments.com",
			},
			Keywords: []string{
				"real-estate", "property", "mortgage", "listing",
			},
		},
		{
			Name:        "Automotive",
			Description: "Cars, vehicles, automotive news, car shopping",
			Domains: []string{
				"caranddriver.com", "motortrend.com", "autotrader.com",
				"cars.com", "carvana.com", "edmunds.com", "kbb.com",
			},
			Keywords: []string{
				"car", "vehicle", "automotive", "motor",
			},
		},
		{
			Name:        "Sports & Recreation",
			Description: "Sports news, fitness, outdoor activities, hobbies",
			Domains: []string{
				"espn.com", "nba.com", "nfl.com", "mlb.com", "strava.com",
				"alltrails.com", "rei.com",
				// Sailing and marine sites from the source collection.
				"yachtworld.com", "boats.com", "boattrader.com",
				"marinetraffic.com", "windy.com", "cruisingworld.com",
				"practical-sailor.com", "boatus.com", "westmarine.com",
				"woodenboat.com",
			},
			Keywords: []string{
				"sports", "fitness", "outdoor", "hiking",
				"sailing", "boat", "yacht", "marine", "nautical",
			},
		},
		{
			Name:        "Home & Garden",
			Description: "Home improvement, interior design, gardening, DIY",
			Domains: []string{
				"houzz.com", "thisoldhouse.com", "bhg.com", "gardeners.com",
			},
			Keywords: []string{
				"home-improvement", "garden", "interior", "diy", "renovation",
			},
		},
		{
			Name:        "Personal Development",
			Description: "Self-help, career development, life coaching, personal blogs",
			Domains: []string{
				"medium.com", "substack.com", "goodreads.com",
			},
			Keywords: []string{
				"self-help", "career", "habit", "coaching", "blog",
			},
		},
		{
			Name:        "Documentation & Reference",
			Description: "API docs, technical documentation, wikis, manuals",
			Domains: []string{
				"docs.python.org", "developer.mozilla.org", "devdocs.io",
				"cppreference.com", "php.net", "ruby-doc.org", "pkg.go.dev",
				"docs.oracle.com", "docs.microsoft.com", "learn.microsoft.com",
				"docs.docker.com", "wikipedia.org", "readthedocs.io",
			},
			Keywords: []string{
				"documentation", "reference", "manual", "guide", "specification",
				"wiki",
			},
		},
		{
			Name:        "Local Services",
			Description: "Local development servers, private-network and loopback addresses",
			Domains: []string{
				"localhost", "127.0.0.1", "0.0.0.0", "192.168.", "10.0.",
			},
			Keywords: []string{
				"staging",
			},
		},
	}
}
