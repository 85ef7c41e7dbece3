package database

import "market-signals/models"

// seedCatalog is the fixed sample of signals loaded into an empty store.
var seedCatalog = []seedSignal{
	{
		Title:         "Surge in demand for halal certified delivery platforms",
		ArabicTitle:   "زيادة الطلب على منصات التوصيل الحلال",
		Summary:       "Multiple users across UAE subreddits and Facebook Groups report difficulty finding reliable halal-certified food delivery options beyond major apps. Small restaurant owners highlight gaps in last-mile logistics for halal-only kitchens.",
		Type:          models.TypeTrending,
		Sector:        "Food & Beverage",
		Platform:      "Reddit",
		Priority:      models.PriorityHigh,
		Score:         91,
		Mentions:      87,
		Keywords:      []string{"halal delivery", "food logistics", "UAE dining", "last-mile"},
		DateCollected: "2026-02-20",
		SourceURL:     "https://reddit.com/r/dubai",
		RawText:       "Honestly the halal delivery scene in Dubai is still super fragmented.",
	},
	{
		Title:         "SME owners frustrated with UAE bank onboarding delays",
		ArabicTitle:   "أصحاب الشركات الصغيرة يعانون من تأخيرات فتح الحسابات البنكية",
		Summary:       "A recurring pain point: small business owners spending 4-8 weeks waiting for corporate bank account approvals.",
		Type:          models.TypePainPoint,
		Sector:        "Fintech",
		Platform:      "LinkedIn",
		Priority:      models.PriorityHigh,
		Score:         88,
		Mentions:      62,
		Keywords:      []string{"SME banking", "account opening", "fintech UAE", "digital banking"},
		DateCollected: "2026-02-21",
		SourceURL:     "https://linkedin.com",
		RawText:       "It took us 6 weeks to open a corporate account.",
	},
	{
		Title:         "Arabic-language mental health content severely underserved",
		ArabicTitle:   "محتوى الصحة النفسية باللغة العربية شحيح",
		Summary:       "Growing conversation about lack of quality mental health resources in Arabic. Strong unmet demand.",
		Type:          models.TypeOpportunity,
		Sector:        "Healthcare",
		Platform:      "X / Twitter",
		Priority:      models.PriorityHigh,
		Score:         85,
		Mentions:      74,
		Keywords:      []string{"mental health", "Arabic content", "wellbeing UAE", "telehealth"},
		DateCollected: "2026-02-19",
		SourceURL:     "https://x.com",
		RawText:       "كل تطبيقات الصحة النفسية بالإنجليزي.",
	},
	{
		Title:         "Real estate investors seeking off-plan transparency tools",
		ArabicTitle:   "المستثمرون العقاريون يبحثون عن أدوات شفافية للمشاريع على الخريطة",
		Summary:       "Investors want dashboards tracking construction progress, escrow releases, and developer reputation.",
		Type:          models.TypePainPoint,
		Sector:        "Real Estate",
		Platform:      "Forums",
		Priority:      models.PriorityHigh,
		Score:         83,
		Mentions:      55,
		Keywords:      []string{"off-plan", "real estate UAE", "investor tools", "transparency"},
		DateCollected: "2026-02-22",
		SourceURL:     "https://propertyfinder.ae",
		RawText:       "Bought off-plan 2 years ago, zero communication from developer.",
	},
	{
		Title:         "Cross-border remittance fees still too high say expats",
		ArabicTitle:   "رسوم التحويل المالي لا تزال مرتفعة بحسب المغتربين",
		Summary:       "Expat communities express ongoing frustration with remittance fees averaging 2-4%.",
		Type:          models.TypePainPoint,
		Sector:        "Fintech",
		Platform:      "Facebook Groups",
		Priority:      models.PriorityMedium,
		Score:         77,
		Mentions:      91,
		Keywords:      []string{"remittance", "expat UAE", "money transfer", "fees"},
		DateCollected: "2026-02-18",
		SourceURL:     "https://facebook.com/groups",
		RawText:       "Still paying 3.5% to send money home.",
	},
	{
		Title:         "D2C grocery brands growing in Abu Dhabi market",
		ArabicTitle:   "نمو العلامات التجارية المباشرة للمستهلك في سوق أبوظبي",
		Summary:       "UAE-based D2C grocery startups gaining traction. Consumers cite freshness guarantees and subscription models.",
		Type:          models.TypeTrending,
		Sector:        "Food & Beverage",
		Platform:      "LinkedIn",
		Priority:      models.PriorityMedium,
		Score:         74,
		Mentions:      38,
		Keywords:      []string{"D2C grocery", "Abu Dhabi", "subscription", "fresh food"},
		DateCollected: "2026-02-23",
		SourceURL:     "https://linkedin.com",
		RawText:       "Our D2C organic vegetable box just hit 2,000 subscribers in Abu Dhabi.",
	},
	{
		Title:         "EdTech platforms lacking Arabic STEM content for K-12",
		ArabicTitle:   "منصات التعليم الإلكتروني تفتقر إلى محتوى STEM بالعربية للمراحل الدراسية",
		Summary:       "Clear market gap for Arabic-first ed-tech serving K-12 students.",
		Type:          models.TypeOpportunity,
		Sector:        "Education",
		Platform:      "Forums",
		Priority:      models.PriorityHigh,
		Score:         82,
		Mentions:      49,
		Keywords:      []string{"edtech", "Arabic STEM", "K-12", "gamified learning"},
		DateCollected: "2026-02-20",
		SourceURL:     "https://forums.ae",
		RawText:       "I want something engaging, Arabic, and curriculum-aligned for UAE schools.",
	},
	{
		Title:         "Healthcare appointment booking fragmented across Emirates",
		ArabicTitle:   "حجز المواعيد الصحية مجزأ عبر الإمارات",
		Summary:       "Users want a single unified platform aggregating availability across public and private providers.",
		Type:          models.TypePainPoint,
		Sector:        "Healthcare",
		Platform:      "Google Reviews",
		Priority:      models.PriorityMedium,
		Score:         71,
		Mentions:      43,
		Keywords:      []string{"healthcare booking", "UAE hospitals", "unified platform", "appointment"},
		DateCollected: "2026-02-21",
		SourceURL:     "https://maps.google.com",
		RawText:       "Had to call 4 different numbers to book a specialist.",
	},
	{
		Title:         "Sustainable packaging demand rising among UAE retailers",
		ArabicTitle:   "ارتفاع الطلب على التغليف المستدام بين تجار التجزئة في الإمارات",
		Summary:       "UAE brands increasingly committing to sustainable packaging amid regulatory pressure and consumer demand.",
		Type:          models.TypeTrending,
		Sector:        "Retail",
		Platform:      "News",
		Priority:      models.PriorityMedium,
		Score:         68,
		Mentions:      29,
		Keywords:      []string{"sustainable packaging", "retail UAE", "eco", "regulation"},
		DateCollected: "2026-02-22",
		SourceURL:     "https://thenationalnews.com",
		RawText:       "UAE retailers are fast-tracking sustainable packaging transitions.",
	},
	{
		Title:         "Tourism operators want AI-powered multilingual tour guides",
		ArabicTitle:   "مشغلو السياحة يريدون مرشدين سياحيين متعددي اللغات بالذكاء الاصطناعي",
		Summary:       "UAE tour operators want AI audio guide technology supporting Arabic, English, Chinese, and Russian.",
		Type:          models.TypeOpportunity,
		Sector:        "Tourism",
		Platform:      "LinkedIn",
		Priority:      models.PriorityMedium,
		Score:         72,
		Mentions:      22,
		Keywords:      []string{"AI tour guide", "multilingual", "tourism UAE", "MICE"},
		DateCollected: "2026-02-19",
		SourceURL:     "https://linkedin.com",
		RawText:       "We need AI audio guides that switch between Arabic and Mandarin.",
	},
	{
		Title:         "Last-mile logistics for e-commerce still unreliable in outer Abu Dhabi",
		ArabicTitle:   "الخدمات اللوجستية للتجارة الإلكترونية غير موثوقة في مناطق أبوظبي الخارجية",
		Summary:       "Market opportunity for hyperlocal logistics player serving Al Ain, Madinat Zayed, and outer Emirates.",
		Type:          models.TypePainPoint,
		Sector:        "Logistics",
		Platform:      "X / Twitter",
		Priority:      models.PriorityHigh,
		Score:         80,
		Mentions:      58,
		Keywords:      []string{"last-mile", "Abu Dhabi delivery", "Al Ain", "logistics gap"},
		DateCollected: "2026-02-23",
		SourceURL:     "https://x.com",
		RawText:       "Al Ain delivery is a disaster compared to Dubai.",
	},
	{
		Title:         "Co-working space demand spiking in Sharjah and Northern Emirates",
		ArabicTitle:   "ارتفاع الطلب على مساحات العمل المشترك في الشارقة والإمارات الشمالية",
		Summary:       "Sharjah and Ras Al Khaimah showing strong unmet demand for co-working spaces.",
		Type:          models.TypeOpportunity,
		Sector:        "Real Estate",
		Platform:      "LinkedIn",
		Priority:      models.PriorityMedium,
		Score:         70,
		Mentions:      31,
		Keywords:      []string{"co-working", "Sharjah", "RAK", "startup space"},
		DateCollected: "2026-02-20",
		SourceURL:     "https://linkedin.com",
		RawText:       "Sharjah freelancers are forced to commute to Dubai for decent workspace.",
	},
	{
		Title:         "Digital wills and estate planning for expats an untapped niche",
		ArabicTitle:   "الوصايا الرقمية وتخطيط التركات للمغتربين فرصة غير مستغلة",
		Summary:       "Very few tech products serve the UAE digital estate planning need for expats.",
		Type:          models.TypeOpportunity,
		Sector:        "Fintech",
		Platform:      "Reddit",
		Priority:      models.PriorityMedium,
		Score:         75,
		Mentions:      37,
		Keywords:      []string{"digital will", "estate planning", "expat UAE", "legaltech"},
		DateCollected: "2026-02-18",
		SourceURL:     "https://reddit.com/r/expats",
		RawText:       "No idea how my assets would be handled if something happened to me.",
	},
	{
		Title:         "Restaurant owners demand better POS integrations with delivery apps",
		ArabicTitle:   "أصحاب المطاعم يطالبون بتكامل أفضل بين نقاط البيع وتطبيقات التوصيل",
		Summary:       "F&B operators cite double-entry headaches managing Talabat, Careem Food, and in-house POS separately.",
		Type:          models.TypePainPoint,
		Sector:        "Food & Beverage",
		Platform:      "Facebook Groups",
		Priority:      models.PriorityMedium,
		Score:         69,
		Mentions:      45,
		Keywords:      []string{"POS integration", "Talabat", "restaurant tech", "UAE F&B"},
		DateCollected: "2026-02-22",
		SourceURL:     "https://facebook.com/groups",
		RawText:       "Managing 3 delivery platforms + our POS is a nightmare.",
	},
	{
		Title:         "Corporate wellness programs underutilized in UAE SMEs",
		ArabicTitle:   "برامج رفاهية الموظفين غير مستغلة في الشركات الصغيرة والمتوسطة بالإمارات",
		Summary:       "SMEs lack affordable, scalable wellness benefit platforms tailored to their employee demographics.",
		Type:          models.TypeOpportunity,
		Sector:        "Healthcare",
		Platform:      "LinkedIn",
		Priority:      models.PriorityLow,
		Score:         61,
		Mentions:      18,
		Keywords:      []string{"corporate wellness", "SME UAE", "employee benefits", "HR tech"},
		DateCollected: "2026-02-21",
		SourceURL:     "https://linkedin.com",
		RawText:       "Big wellness platforms want AED 200K+ contracts. We're 30 people.",
	},
	{
		Title:         "Rising interest in UAE-based cloud kitchen concepts",
		ArabicTitle:   "اهتمام متزايد بمفهوم المطابخ السحابية في الإمارات",
		Summary:       "Demand emerging for plug-and-play cloud kitchen infrastructure with built-in delivery partnerships.",
		Type:          models.TypeTrending,
		Sector:        "Food & Beverage",
		Platform:      "Reddit",
		Priority:      models.PriorityMedium,
		Score:         66,
		Mentions:      27,
		Keywords:      []string{"cloud kitchen", "ghost kitchen", "UAE F&B", "food startup"},
		DateCollected: "2026-02-19",
		SourceURL:     "https://reddit.com/r/dubai",
		RawText:       "Cloud kitchens in Dubai are filling up fast.",
	},
	{
		Title:         "Arabic language interfaces still lacking in SaaS tools",
		ArabicTitle:   "واجهات اللغة العربية لا تزال تفتقر إليها أدوات SaaS",
		Summary:       "RTL support remains inconsistent even in major platforms. A large, underserved market.",
		Type:          models.TypePainPoint,
		Sector:        "Technology",
		Platform:      "X / Twitter",
		Priority:      models.PriorityHigh,
		Score:         79,
		Mentions:      53,
		Keywords:      []string{"Arabic UI", "RTL", "SaaS localization", "Arabic tech"},
		DateCollected: "2026-02-20",
		SourceURL:     "https://x.com",
		RawText:       "Why in 2026 do enterprise SaaS products still ship broken Arabic RTL support?",
	},
	{
		Title:         "Demand for Islamic finance investment apps among millennials",
		ArabicTitle:   "الطلب على تطبيقات الاستثمار الإسلامية بين جيل الألفية",
		Summary:       "UAE millennials want a Robinhood-style app that is fully Shariah-compliant and transparent.",
		Type:          models.TypeOpportunity,
		Sector:        "Fintech",
		Platform:      "Reddit",
		Priority:      models.PriorityHigh,
		Score:         84,
		Mentions:      61,
		Keywords:      []string{"Islamic finance", "halal investing", "millennial UAE", "Shariah"},
		DateCollected: "2026-02-23",
		SourceURL:     "https://reddit.com/r/IslamicFinance",
		RawText:       "I want a simple, clean investing app that's halal.",
	},
	{
		Title:         "Tourism recovery driving demand for Arabic-first travel content creators",
		ArabicTitle:   "تعافي السياحة يدفع الطلب نحو منشئي المحتوى السياحي باللغة العربية",
		Summary:       "GCC domestic traveller is underserved in Arabic-language travel content on TikTok and YouTube.",
		Type:          models.TypeOpportunity,
		Sector:        "Tourism",
		Platform:      "LinkedIn",
		Priority:      models.PriorityMedium,
		Score:         67,
		Mentions:      24,
		Keywords:      []string{"Arabic travel content", "UAE tourism", "influencer", "GCC"},
		DateCollected: "2026-02-22",
		SourceURL:     "https://linkedin.com",
		RawText:       "Investing in Arabic content creators for UAE tourism campaigns.",
	},
	{
		Title:         "Warehouse automation interest spiking among UAE 3PLs",
		ArabicTitle:   "ارتفاع الاهتمام بأتمتة المستودعات بين شركات الخدمات اللوجستية في الإمارات",
		Summary:       "UAE 3PLs exploring robotics and WMS upgrades driven by labor cost pressures and e-commerce growth.",
		Type:          models.TypeTrending,
		Sector:        "Logistics",
		Platform:      "News",
		Priority:      models.PriorityMedium,
		Score:         65,
		Mentions:      19,
		Keywords:      []string{"warehouse automation", "robotics", "3PL UAE", "WMS"},
		DateCollected: "2026-02-21",
		SourceURL:     "https://arabianbusiness.com",
		RawText:       "UAE logistics firms are fast-tracking warehouse automation investments.",
	},
	{
		Title:         "Mention: Careem expanding into new service verticals",
		ArabicTitle:   "كريم تتوسع في قطاعات خدمية جديدة",
		Summary:       "Careem's continued expansion into home services, grocery, and payments signals increasing super-app competition.",
		Type:          models.TypeMention,
		Sector:        "Technology",
		Platform:      "News",
		Priority:      models.PriorityMedium,
		Score:         63,
		Mentions:      44,
		Keywords:      []string{"Careem", "super app", "UAE tech", "expansion"},
		DateCollected: "2026-02-23",
		SourceURL:     "https://thenationalnews.com",
		RawText:       "Careem is quietly building out its super-app ambitions.",
	},
	{
		Title:         "Mention: ADGM accelerator cohort signals B2B fintech focus",
		ArabicTitle:   "مسرّع ADGM يركز على تمويل الشركات",
		Summary:       "ADGM accelerator heavily weighted toward B2B fintech, regtech, and embedded finance.",
		Type:          models.TypeMention,
		Sector:        "Fintech",
		Platform:      "LinkedIn",
		Priority:      models.PriorityLow,
		Score:         58,
		Mentions:      16,
		Keywords:      []string{"ADGM", "accelerator", "B2B fintech", "Abu Dhabi"},
		DateCollected: "2026-02-20",
		SourceURL:     "https://linkedin.com",
		RawText:       "8 startups, all B2B focused.",
	},
	{
		Title:         "Pet care services market growing rapidly in Dubai",
		ArabicTitle:   "سوق خدمات رعاية الحيوانات الأليفة ينمو بسرعة في دبي",
		Summary:       "Strong UAE pet owner demand for premium grooming, vet telehealth, and pet sitting. Ownership rising post-pandemic.",
		Type:          models.TypeTrending,
		Sector:        "Retail",
		Platform:      "Reddit",
		Priority:      models.PriorityMedium,
		Score:         64,
		Mentions:      33,
		Keywords:      []string{"pet care", "Dubai pets", "vet UAE", "grooming"},
		DateCollected: "2026-02-19",
		SourceURL:     "https://reddit.com/r/dubai",
		RawText:       "Dubai pet parents are spending crazy money on grooming.",
	},
	{
		Title:         "School transport safety concerns raised by parents",
		ArabicTitle:   "مخاوف أولياء الأمور بشأن سلامة المواصلات المدرسية",
		Summary:       "Strong demand signal for a school transport management platform with GPS tracking and driver vetting.",
		Type:          models.TypePainPoint,
		Sector:        "Education",
		Platform:      "Facebook Groups",
		Priority:      models.PriorityHigh,
		Score:         81,
		Mentions:      67,
		Keywords:      []string{"school bus", "transport safety", "parent app", "UAE schools"},
		DateCollected: "2026-02-22",
		SourceURL:     "https://facebook.com/groups",
		RawText:       "I have no idea where my kid's school bus is. There's no tracking app.",
	},
	{
		Title:         "EV charging infrastructure gaps frustrate UAE early adopters",
		ArabicTitle:   "ثغرات البنية التحتية لشحن السيارات الكهربائية تُحبط مبكري التبني في الإمارات",
		Summary:       "Insufficient fast chargers outside major malls and unclear DEWA billing for EV charging. Clear infrastructure opportunity.",
		Type:          models.TypePainPoint,
		Sector:        "Technology",
		Platform:      "Reddit",
		Priority:      models.PriorityMedium,
		Score:         73,
		Mentions:      41,
		Keywords:      []string{"EV charging", "electric vehicle UAE", "DEWA", "infrastructure"},
		DateCollected: "2026-02-21",
		SourceURL:     "https://reddit.com/r/dubai",
		RawText:       "The EV charging infrastructure here is embarrassingly underdeveloped.",
	},
}
