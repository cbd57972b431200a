package entities

// DefaultSiteContent returns a fresh copy of the compiled-in SiteContent
// document used when storage is empty or holds an unusable payload.
func DefaultSiteContent() *SiteContent {
	return &SiteContent{
		SchemaVersion: SiteContentSchemaVersion,
		HeaderImage:   "https://images.unsplash.com/photo-1504052434569-70ad5836ab65?q=80&w=3870&auto-format=fit-crop",
		Verses: []Verse{
			{
				Text:      "For God so loved the world that he gave his one and only Son, that whoever believes in him shall not perish but have eternal life.",
				Reference: "John 3:16 (NIV)",
			},
			{
				Text:      "\"For I know the plans I have for you,\" declares the Lord, \"plans to prosper you and not to harm you, plans to give you hope and a future.\"",
				Reference: "Jeremiah 29:11 (NIV)",
			},
			{
				Text:      "But God demonstrates his own love for us in this: While we were still sinners, Christ died for us.",
				Reference: "Romans 5:8 (NIV)",
			},
		},
		About: About{
			Title: "Mission of Gospel Archive",
			P1:    "Welcome to Gospel Archive, a dedicated platform for preserving and distributing the pure essence of the Gospel.",
			P2:    "Our mission is to nourish souls and share the message of salvation, helping believers grow in their faith.",
		},
		Resources: []Resource{
			{
				ID:          CategoryRoot,
				Tag:         "The Root",
				Image:       "https://images.unsplash.com/photo-1490730141103-6cac27aaab94?q=80&w=2070&auto-format=fit-crop",
				Alt:         "The Root of Faith",
				Icon:        "cross",
				Title:       "The Root of Faith",
				Description: "Establishing a firm foundation of faith through theological expositions.",
			},
			{
				ID:          CategoryStem,
				Tag:         "The Stem",
				Image:       "https://images.unsplash.com/photo-1464692805480-a69dfaafdb0d?q=80&w=2070&auto-format=fit-crop",
				Alt:         "The Stem of the Word",
				Icon:        "sprout",
				Title:       "The Stem of the Word",
				Description: "A joyful space for exploration and fellowship.",
			},
			{
				ID:          CategoryFruit,
				Tag:         "The Fruit",
				Image:       "https://images.unsplash.com/photo-1543326727-cf6c39e8f84c?q=80&w=2070&auto-format=fit-crop",
				Alt:         "The Fruit of the Gospel",
				Icon:        "grape",
				Title:       "The Fruit of the Gospel",
				Description: "Sharing creative and enriching worship resources.",
			},
		},
		Labels: Labels{
			Categories: map[string]string{
				CategoryRoot:  "The Root",
				CategoryStem:  "The Stem",
				CategoryFruit: "The Fruit",
			},
			Languages: map[string]string{
				LanguageEnglish: "English",
				LanguageChinese: "Chinese",
				LanguageKorean:  "Korean",
			},
		},
		BoardDescriptions: map[string]map[string]string{
			CategoryRoot: {
				LanguageEnglish: "Deep theological insights and foundational teachings of the Christian faith.",
				LanguageChinese: "深入的神学洞察和基督信仰的基础教学。",
				LanguageKorean:  "그리스도교 신앙의 깊은 신학적 통찰과 기초 교리를 다룹니다.",
			},
			CategoryStem: {
				LanguageEnglish: "Daily meditations and community discussions to grow your spiritual life.",
				LanguageChinese: "每日冥想和社区讨论，促进您的灵性成长。",
				LanguageKorean:  "영적 성장을 위한 매일의 묵상과 공동체 토론 공간입니다.",
			},
			CategoryFruit: {
				LanguageEnglish: "Practical resources for families, children, and ministry outreach.",
				LanguageChinese: "适用于家庭、儿童和事工外展的实用资源。",
				LanguageKorean:  "가정, 어린이 및 사역 활동을 위한 실질적인 자료들을 공유합니다.",
			},
		},
	}
}

// DefaultPosts returns a fresh copy of the seed post collection, most recent
// first.
func DefaultPosts() []Post {
	return []Post{
		{
			ID:       1,
			Category: CategoryRoot,
			Language: LanguageEnglish,
			Title:    "The Foundation of Faith in Christ",
			Author:   "John Calvin",
			Date:     "2024-07-20",
			Content:  "Full theological exposition on the foundational principles of faith. This message explores how the Gospel serves as the ultimate bedrock for all spiritual life.",
			VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			ID:       2,
			Category: CategoryRoot,
			Language: LanguageEnglish,
			Title:    "Understanding Grace and Law",
			Author:   "Martin Luther",
			Date:     "2024-07-18",
			Content:  "A deep dive into the relationship between divine grace and Mosaic law. How do we live under grace while respecting the moral order of God?",
			ImageURL: "https://images.unsplash.com/photo-1507434965515-61970f2bd7c6?q=80&w=2070&auto-format=fit-crop",
		},
		{
			ID:       3,
			Category: CategoryRoot,
			Language: LanguageChinese,
			Title:    "信仰的根基",
			Author:   "王明道",
			Date:     "2024-07-20",
			Content:  "关于信仰基本原则的完整神学论述...",
		},
		{
			ID:       4,
			Category: CategoryRoot,
			Language: LanguageChinese,
			Title:    "理解恩典与律法",
			Author:   "宋尚节",
			Date:     "2024-07-18",
			Content:  "深入探讨神的恩典与摩西律法之间的关系...",
		},
		{
			ID:       5,
			Category: CategoryRoot,
			Language: LanguageKorean,
			Title:    "그리스도 안의 믿음의 기초",
			Author:   "박윤선",
			Date:     "2024-07-20",
			Content:  "믿음의 기초 원리에 대한 완전한 신학적 해설...",
		},
		{
			ID:       6,
			Category: CategoryRoot,
			Language: LanguageKorean,
			Title:    "은혜와 율법의 이해",
			Author:   "김익두",
			Date:     "2024-07-18",
			Content:  "하나님의 은혜와 모세의 율법 사이의 관계에 대한 깊은 탐구...",
		},
		{
			ID:       7,
			Category: CategoryStem,
			Language: LanguageEnglish,
			Title:    "Growing in Fellowship: A Study of Acts 2",
			Author:   "Dietrich Bonhoeffer",
			Date:     "2024-07-19",
			Content:  "Exploring the importance of community and shared faith...",
			VideoURL: "https://vimeo.com/76979871",
		},
		{
			ID:       11,
			Category: CategoryFruit,
			Language: LanguageEnglish,
			Title:    "Worship Resources for the Next Generation",
			Author:   "Hillsong Kids",
			Date:     "2024-07-21",
			Content:  "Creative and enriching materials to help children grow in faith...",
			ImageURL: "https://images.unsplash.com/photo-1471440671318-55dfe1f5ad65?q=80&w=2070&auto-format=fit-crop",
		},
	}
}
