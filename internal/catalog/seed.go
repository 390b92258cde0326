package catalog

// DefaultVersion is the content version of the built-in catalog.
const DefaultVersion = "v1.0.0"

// Default returns the built-in system design catalog.
func Default() *Catalog {
	c, err := newVersioned(DefaultVersion, seedLessons())
	if err != nil {
		// The seed is static; a failure here is a programming error.
		panic(err)
	}
	return c
}

func seedLessons() []Lesson {
	return []Lesson{
		{
			ID:            "intro",
			Title:         "What Is System Design?",
			Summary:       "Requirements, constraints and the shape of a design interview.",
			Category:      CategoryFundamentals,
			Difficulty:    DifficultyBeginner,
			EstimatedMins: 10,
			Stages: []Stage{
				{ID: "theory", Type: StageConcept, Title: "Functional vs non-functional",
					Body: "Functional requirements say what the system does. Non-functional requirements say how well: latency, availability, durability, cost."},
				{ID: "estimate", Type: StageDemo, Title: "Back-of-the-envelope numbers",
					Body: "100M daily users * 10 requests / 86,400 s is roughly 11,600 requests per second on average. Peak is often 2-3x the average."},
				{ID: "check", Type: StageQuiz, Title: "Quick check",
					Body: "Which of these is a non-functional requirement? (a) users can upload photos (b) p99 latency under 200 ms"},
				{ID: "recap", Type: StageSummary, Title: "Recap",
					Body: "Clarify requirements first, estimate load second, draw boxes third."},
			},
		},
		{
			ID:            "scaling-basics",
			Title:         "Vertical and Horizontal Scaling",
			Summary:       "Bigger machines versus more machines, and what statelessness buys you.",
			Category:      CategoryScaling,
			Difficulty:    DifficultyBeginner,
			EstimatedMins: 15,
			Prerequisites: []string{"intro"},
			Stages: []Stage{
				{ID: "theory", Type: StageConcept, Title: "Scale up, scale out",
					Body: "Vertical scaling adds CPU and memory to one host until it hits a ceiling. Horizontal scaling adds hosts and needs the service to be stateless."},
				{ID: "simulate", Type: StageSimulate, Title: "Traffic ramp",
					Body: "Traffic doubles every minute. Watch one large server saturate while a pool of small servers keeps latency flat."},
				{ID: "break", Type: StageBreak, Title: "Sticky sessions",
					Body: "A server holding session state dies. Every user pinned to it is logged out."},
				{ID: "decide", Type: StageDecision, Title: "Where does session state live?",
					Body: "Options: in process memory, in a shared cache, in a signed client token. Pick one and justify the trade-off."},
				{ID: "recap", Type: StageSummary, Title: "Recap",
					Body: "Move state out of the web tier before adding more of it."},
			},
		},
		{
			ID:            "load-balancing",
			Title:         "Load Balancing",
			Summary:       "Spreading requests across a pool and detecting unhealthy backends.",
			Category:      CategoryScaling,
			Difficulty:    DifficultyBeginner,
			EstimatedMins: 15,
			Prerequisites: []string{"scaling-basics"},
			Stages: []Stage{
				{ID: "theory", Type: StageConcept, Title: "L4 and L7",
					Body: "Layer 4 balancers route connections by address and port. Layer 7 balancers read HTTP and can route by path, header or cookie."},
				{ID: "demo", Type: StageDemo, Title: "Round robin vs least connections",
					Body: "Round robin ignores request cost. Least connections adapts when some requests are slow."},
				{ID: "break", Type: StageBreak, Title: "A backend hangs",
					Body: "One backend accepts connections but never answers. Without health checks a third of requests time out."},
				{ID: "quiz", Type: StageQuiz, Title: "Quick check",
					Body: "Which algorithm handles heterogeneous request cost better?"},
			},
		},
		{
			ID:            "caching",
			Title:         "Caching",
			Summary:       "Cache-aside, write-through, eviction and invalidation.",
			Category:      CategoryStorage,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 20,
			Prerequisites: []string{"scaling-basics"},
			Stages: []Stage{
				{ID: "theory", Type: StageConcept, Title: "Where caches live",
					Body: "Client, CDN, reverse proxy, application and database caches each trade freshness for latency."},
				{ID: "simulate", Type: StageSimulate, Title: "Hit ratio",
					Body: "Vary cache size and TTL and watch database load fall as the hit ratio climbs."},
				{ID: "break", Type: StageBreak, Title: "Thundering herd",
					Body: "A hot key expires and thousands of requests miss at once, stampeding the database."},
				{ID: "decide", Type: StageDecision, Title: "Invalidation strategy",
					Body: "Options: short TTL, explicit delete on write, versioned keys."},
				{ID: "recap", Type: StageSummary, Title: "Recap",
					Body: "Cache what is read often and changes rarely, and plan for expiry storms."},
			},
		},
		{
			ID:            "sharding",
			Title:         "Replication and Sharding",
			Summary:       "Read replicas, partition keys and rebalancing.",
			Category:      CategoryStorage,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 25,
			Prerequisites: []string{"caching"},
			Stages: []Stage{
				{ID: "theory", Type: StageConcept, Title: "Replicas and partitions",
					Body: "Replication copies the same data for availability and read throughput. Sharding splits data so each node holds a slice."},
				{ID: "demo", Type: StageDemo, Title: "Choosing a shard key",
					Body: "Sharding users by signup date puts all new, active users on one shard. Hashing the user id spreads them."},
				{ID: "break", Type: StageBreak, Title: "Hot partition",
					Body: "A celebrity account receives a million writes per minute on a single shard."},
				{ID: "practice", Type: StagePractice, Title: "Design the key",
					Body: "Sketch a shard key for a chat application's message table."},
				{ID: "recap", Type: StageSummary, Title: "Recap",
					Body: "Pick keys with high cardinality and even access, and expect to rebalance."},
			},
		},
		{
			ID:            "message-queues",
			Title:         "Message Queues",
			Summary:       "Decoupling producers and consumers with queues and logs.",
			Category:      CategoryMessaging,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 20,
			Prerequisites: []string{"scaling-basics"},
			Stages: []Stage{
				{ID: "theory", Type: StageConcept, Title: "Queues and logs",
					Body: "A queue deletes messages once consumed. A log retains them and lets consumers track their own offsets."},
				{ID: "simulate", Type: StageSimulate, Title: "Backpressure",
					Body: "Producers outpace consumers. Watch queue depth grow and consumer autoscaling catch up."},
				{ID: "break", Type: StageBreak, Title: "Poison message",
					Body: "One malformed message crashes every consumer that reads it, forever."},
				{ID: "decide", Type: StageDecision, Title: "Delivery semantics",
					Body: "At-most-once, at-least-once with idempotent handlers, or exactly-once with transactions?"},
			},
		},
		{
			ID:            "consistency",
			Title:         "Consistency and CAP",
			Summary:       "What partitions force you to give up.",
			Category:      CategoryReliability,
			Difficulty:    DifficultyAdvanced,
			EstimatedMins: 25,
			Prerequisites: []string{"sharding"},
			Stages: []Stage{
				{ID: "theory", Type: StageConcept, Title: "CAP, then PACELC",
					Body: "During a partition a system chooses availability or consistency. Else, it still trades latency against consistency."},
				{ID: "simulate", Type: StageSimulate, Title: "Quorums",
					Body: "With N=3 replicas, try R=1/W=1, R=2/W=2 and R=1/W=3 and observe stale reads."},
				{ID: "quiz", Type: StageQuiz, Title: "Quick check",
					Body: "Which R/W combination guarantees read-your-writes with N=3?"},
				{ID: "recap", Type: StageSummary, Title: "Recap",
					Body: "R + W > N gives overlapping quorums."},
			},
		},
		{
			ID:            "rate-limiting",
			Title:         "Rate Limiting",
			Summary:       "Token buckets, sliding windows and distributed counters.",
			Category:      CategoryReliability,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 15,
			Prerequisites: []string{"load-balancing", "caching"},
			Stages: []Stage{
				{ID: "theory", Type: StageConcept, Title: "Algorithms",
					Body: "Token bucket allows bursts up to bucket size. Sliding window log is exact but costs memory per request."},
				{ID: "demo", Type: StageDemo, Title: "Limits across many gateways",
					Body: "Each gateway keeps a local bucket and periodically syncs counts to a shared cache."},
				{ID: "break", Type: StageBreak, Title: "Cache outage",
					Body: "The shared counter store is unreachable. Fail open or fail closed?"},
				{ID: "recap", Type: StageSummary, Title: "Recap",
					Body: "Limit as close to the edge as possible and decide the failure mode up front."},
			},
		},
		{
			ID:            "url-shortener",
			Title:         "Case Study: URL Shortener",
			Summary:       "Putting it together: ids, storage, caching and redirects at scale.",
			Category:      CategoryCaseStudy,
			Difficulty:    DifficultyAdvanced,
			EstimatedMins: 40,
			Prerequisites: []string{"sharding", "rate-limiting"},
			Stages: []Stage{
				{ID: "requirements", Type: StageConcept, Title: "Requirements",
					Body: "Shorten a URL, redirect fast, track clicks. 100:1 read to write ratio."},
				{ID: "ids", Type: StageDecision, Title: "Generating short codes",
					Body: "Options: hash and truncate, base62 of a counter, pre-generated key ranges."},
				{ID: "simulate", Type: StageSimulate, Title: "Redirect path",
					Body: "Route redirects through a CDN and cache; measure origin load."},
				{ID: "break", Type: StageBreak, Title: "Viral link",
					Body: "One code receives ten thousand hits per second from a single region."},
				{ID: "practice", Type: StagePractice, Title: "Draw it",
					Body: "Sketch the full architecture with capacity numbers."},
				{ID: "recap", Type: StageSummary, Title: "Recap",
					Body: "Reads dominate: cache aggressively, shard by code, and rate limit creation."},
			},
		},
	}
}
