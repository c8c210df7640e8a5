package projects

import "github.com/Siddesh7/vibe-coding-series/internal/models"

var series = []Series{
	{
		Slug:    "farcaster",
		Title:   "The 39 Farcaster Frames v2 Challenge",
		Tagline: "Join me as I vibe code 39 different farcaster frames, livestreamed three times a week. No pressure, just vibes.",
		Ideas:   farcasterIdeas,
	},
	{
		Slug:    "fullstack",
		Title:   "The Fullstack App Challenge",
		Tagline: "One fullstack app per stream, built live from an empty repo. No pressure, just vibes.",
		Ideas:   fullstackIdeas,
	},
}

var farcasterIdeas = []Idea{
	{Name: "Decentralized community notes taken using rewards to submit accurate info", Attribution: "topia"},
	{Name: "PoolTogether-style deposit for onchain prize savings", Attribution: "topia"},
	{Name: "Tumble.eth, nonstop airdrop your USDC rewards to onchain prize savings", Attribution: "tumble.eth"},
	{Name: "Crypto mahjong", Attribution: "topia"},
	{Name: "Fartmart similar to Amazon/toktok shop"},
	{Name: "A high school yearbook but for farcaster PFP gallery of all users - give me a place to sign 'have a great summer'", Attribution: "anoncast.eth"},
	{Name: "Group buy mini-app", Attribution: "dharmi"},
	{Name: "Pop-up wu wu charm with minting", Attribution: "dwr.eth"},
	{Name: "Tinder onchain", Attribution: "topia, dwr.eth"},
	{Name: "In-app NFT gifting, another example of onchain tchotchkes", Attribution: "dwr.eth"},
	{Name: "Indy 500-style race with Farcaster user racers"},
	{Name: "Sol-based coin airdrop for FC accounts with SOL-connected wallets", Attribution: "v2.xyz.eth"},
	{Name: "Sims-like relationship airgraph for FC accounts measuring your standing with recently interacted people"},
	{Name: "Frame that allows you to post something and lock the content behind the paywall"},
	{Name: "Make it available only for some fids", Attribution: "sol.eth"},
	{Name: "Send voice messages", Attribution: "mikad.eth"},
	{Name: "A reverse bounty board where moonshot ideas requesting funding are posted like a grant", Attribution: "anoncast.eth"},
	{Name: "Chinese New Year Frame social graph", Attribution: "mic.eth"},
	{Name: "Governance app - Use the vote surfaced on Agora, identify if you're eligible for a vote"},
	{Name: "Charity of the week frame", Attribution: "dwr.eth"},
	{Name: "Onchain Powerlevel frame", Attribution: "dwr.eth"},
	{Name: "Bingo", Attribution: "manuth"},
	{Name: "Poker", Attribution: "treeth"},
	{Name: "Onchain time-based social game", Attribution: "dwr.eth"},
	{Name: "Escrow frame", Attribution: "designed.eth"},
	{Name: "Notifies if your frame expires soon", Attribution: "designed.eth"},
	{Name: "Guided meditations", Attribution: "dwr.eth"},
	{Name: "Space Trade or Drugs Wars game", Attribution: "dwr.eth"},
	{Name: "Farcady Longform Farcaster", Attribution: "dwr.eth"},
	{Name: "Escrow fishing mini-game", Attribution: "bones.eth"},
	{Name: "Onchain token launchers", Attribution: "dwr.eth"},
	{Name: "Listens for all FC native token launches", Attribution: "dwr.eth"},
	{Name: "GoFundMe for Farcaster", Attribution: "shultz, snarf.eth"},
	{Name: "A Turing Test app - join a group chat and guess who is the bot", Attribution: "coccarella.eth"},
	{Name: "Faro Party multiplayer in-frame minigames", Attribution: "coccarella.eth"},
	{Name: "Skribbl.io group drawing game where you guess a drawing from someone else", Attribution: "dwr.eth"},
	{Name: "Foursquare 2.0", Attribution: "cryptonative.guru"},
	{Name: "Sell a file frame", Attribution: "cryptonative.guru"},
	{Name: "Carousel frame - tap on the frame, display a grid of images like an Instagram profile", Attribution: "dwr.eth"},
}

var fullstackIdeas = []Idea{
	{Name: "Twitter clone with real-time updates, user profiles, and tweet functionality"},
	{Name: "Fullstack e-commerce platform with product listings, cart, and checkout"},
	{Name: "Trello-inspired task management app with drag-and-drop functionality"},
	{Name: "Fullstack job board with search, filtering, and application tracking"},
}

var catalog = []Project{
	{
		ID:              1,
		Title:           "Twitter Clone",
		Date:            "March 15, 2025",
		Description:     "Building a Twitter clone with real-time updates, user profiles, and tweet functionality.",
		LongDescription: "In this project, we built a full-featured Twitter clone that allows users to create accounts, post tweets, follow other users, and engage with content through likes and retweets. The application features real-time updates using WebSockets to ensure users see new content as it's created.",
		Status:          "completed",
		Thumbnail:       "/placeholder.svg?height=500&width=1000",
		Features: []string{
			"User authentication and profiles",
			"Tweet creation, editing, and deletion",
			"Real-time timeline updates",
			"Like and retweet functionality",
			"Follow/unfollow users",
			"Responsive design for mobile and desktop",
		},
		TechStack: []string{
			"Next.js 14 with App Router",
			"TypeScript",
			"Tailwind CSS",
			"Prisma ORM",
			"PostgreSQL",
			"NextAuth.js for authentication",
			"Pusher for real-time updates",
		},
		Challenges: "One of the biggest challenges was implementing real-time updates without overloading the server or client. We solved this by using a combination of optimistic UI updates and efficient WebSocket connections that only send delta updates.",
		Links: []models.StreamLink{
			{Type: "twitter", Label: "Watch Livestream", URL: "https://twitter.com/username"},
			{Type: "youtube", Label: "View Recording", URL: "https://youtube.com/watch?v=123"},
			{Type: "github", Label: "Source Code", URL: "https://github.com/username/project-1"},
		},
		NextProject: &NextProject{
			Title:       "E-commerce Platform",
			Description: "Creating a fullstack e-commerce platform with product listings, cart, and checkout.",
			Date:        "March 17, 2025",
			Link:        "https://twitter.com/username",
		},
	},
	{
		ID:              2,
		Title:           "E-commerce Platform",
		Date:            "March 17, 2025",
		Description:     "Creating a fullstack e-commerce platform with product listings, cart, and checkout.",
		LongDescription: "This project focused on building a complete e-commerce solution with product management, shopping cart functionality, secure checkout process, and order management. We implemented features like product search, filtering, and sorting to enhance the user experience.",
		Status:          "completed",
		Thumbnail:       "/placeholder.svg?height=500&width=1000",
		Features: []string{
			"Product catalog with categories and search",
			"Shopping cart with persistent storage",
			"Secure checkout with Stripe integration",
			"User accounts and order history",
			"Admin dashboard for product management",
			"Responsive design with mobile-first approach",
		},
		TechStack: []string{
			"Next.js 14 with App Router",
			"TypeScript",
			"Tailwind CSS",
			"Prisma ORM",
			"PostgreSQL",
			"NextAuth.js for authentication",
			"Stripe for payment processing",
		},
		Challenges: "Implementing a secure and seamless checkout process was challenging. We had to ensure that cart state was preserved across sessions while also handling edge cases like inventory changes between adding to cart and checkout.",
		Links: []models.StreamLink{
			{Type: "twitter", Label: "Watch Livestream", URL: "https://twitter.com/username"},
			{Type: "youtube", Label: "View Recording", URL: "https://youtube.com/watch?v=123"},
			{Type: "github", Label: "Source Code", URL: "https://github.com/username/project-2"},
		},
		NextProject: &NextProject{
			Title:       "Task Management App",
			Description: "Building a Trello-inspired task management app with drag-and-drop functionality.",
			Date:        "March 19, 2025",
			Link:        "https://twitter.com/username",
		},
	},
	{
		ID:              3,
		Title:           "Task Management App",
		Date:            "March 19, 2025",
		Description:     "Building a Trello-inspired task management app with drag-and-drop functionality.",
		LongDescription: "In this project, we created a task management application inspired by Trello, featuring drag-and-drop functionality for task organization. Users can create boards, lists, and cards to organize their work and collaborate with team members.",
		Status:          "in-progress",
		Thumbnail:       "/placeholder.svg?height=500&width=1000",
		Features: []string{
			"Drag-and-drop interface for tasks",
			"Board, list, and card creation",
			"Task assignment and due dates",
			"Labels and priority markers",
			"Team collaboration features",
			"Activity log and notifications",
		},
		TechStack: []string{
			"Next.js 14 with App Router",
			"TypeScript",
			"Tailwind CSS",
			"Prisma ORM",
			"PostgreSQL",
			"NextAuth.js for authentication",
			"dnd-kit for drag-and-drop functionality",
		},
		Challenges: "Implementing a smooth drag-and-drop experience while maintaining state consistency between the client and server was challenging. We used optimistic updates with server validation to ensure a responsive yet accurate user experience.",
		Links: []models.StreamLink{
			{Type: "twitter", Label: "Watch Livestream", URL: "https://twitter.com/username"},
			{Type: "github", Label: "Source Code", URL: "https://github.com/username/project-3"},
		},
		NextProject: &NextProject{
			Title:       "Job Board",
			Description: "Creating a fullstack job board with search, filtering, and application tracking.",
			Date:        "March 22, 2025",
			Link:        "https://twitter.com/username",
		},
	},
}
