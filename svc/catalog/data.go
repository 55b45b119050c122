package catalog

// DefaultData returns the built-in catalog content served by the site.
func DefaultData() Data {
	return Data{
		Categories: []Category{
			{ID: "cat-1", Name: "Frontend", Slug: "frontend"},
			{ID: "cat-2", Name: "Backend", Slug: "backend"},
			{ID: "cat-3", Name: "Fullstack", Slug: "fullstack"},
			{ID: "cat-4", Name: "AWS & Cloud", Slug: "aws-cloud"},
		},
		Courses: []Course{
			{
				ID:               "course-1",
				Slug:             "react-for-beginners",
				Title:            "React for Beginners",
				ShortDescription: "Master the basics of React.js with hands-on projects.",
				Description:      "This course covers everything from JSX to Hooks and State Management. Perfect for those starting their frontend journey.",
				Difficulty:       Beginner,
				Language:         "English",
				Platform:         "YouTube",
				IsFree:           true,
				ExternalURL:      "https://youtube.com",
				RecommendedFor:   "Aspiring frontend developers",
				CategoryID:       "cat-1",
			},
			{
				ID:               "course-2",
				Slug:             "advanced-node-patterns",
				Title:            "Advanced Node.js Patterns",
				ShortDescription: "Deep dive into Node.js architecture and design patterns.",
				Description:      "Learn how to build scalable backend systems using Node.js. Topics include Streams, Clusters, and Microservices.",
				Difficulty:       Advanced,
				Language:         "English",
				Platform:         "Udemy",
				IsFree:           false,
				ExternalURL:      "https://udemy.com",
				RecommendedFor:   "Backend engineers looking to level up",
				CategoryID:       "cat-2",
			},
			{
				ID:               "course-3",
				Slug:             "nextjs-15-full-course",
				Title:            "Next.js 15 Full Course",
				ShortDescription: "The ultimate guide to Next.js App Router and Server Components.",
				Description:      "Build a production-ready application with the latest Next.js features.",
				Difficulty:       Intermediate,
				Language:         "English",
				Platform:         "YouTube",
				IsFree:           true,
				ExternalURL:      "https://youtube.com",
				RecommendedFor:   "Developers familiar with React",
				CategoryID:       "cat-3",
			},
		},
		Roadmaps: []Roadmap{
			{
				ID:          "roadmap-vibe",
				Slug:        VibeCodingSlug,
				Title:       "Vibe Coding Roadmap",
				Description: "A practical path to building software without becoming a programmer. Learn to think clearly, direct AI effectively, and ship working software.",
			},
			{
				ID:          "roadmap-1",
				Slug:        "frontend-roadmap",
				Title:       "Frontend Developer Roadmap",
				Description: "A step-by-step guide to becoming a modern frontend developer.",
				Items: []RoadmapItem{
					{
						ID:          "ri-1",
						Order:       1,
						Explanation: "Start with the basics of React to understand component-based architecture.",
						CourseID:    "course-1",
					},
					{
						ID:          "ri-2",
						Order:       2,
						Explanation: "Level up by learning how to build fullstack apps with Next.js.",
						CourseID:    "course-3",
					},
				},
			},
		},
	}
}
