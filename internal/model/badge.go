package model

// Badge is a computed achievement; nothing about it is stored.
type Badge struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

var (
	BadgeRoadScholar   = Badge{Name: "Road Scholar", Image: "./assets/badges/modules.png"}
	BadgeMastermind    = Badge{Name: "Mastermind", Image: "./assets/badges/quiz.png"}
	BadgeKingOfTheRoad = Badge{Name: "King of the Road", Image: "./assets/badges/modules&quiz.png"}
)

// ModuleBadges maps a module id to the badge earned by viewing all of its lessons.
var ModuleBadges = map[uint]Badge{
	1: {Name: "Sign Novice", Image: "./assets/badges/module_beginner.png"},
	2: {Name: "PathFinder", Image: "./assets/badges/module_advanced.png"},
	3: {Name: "Sign Expert", Image: "./assets/badges/module_expert.png"},
}

// ActivityBadges maps an activity id to the badge earned by mastering it.
var ActivityBadges = map[uint]Badge{
	1: {Name: "Rising Pro", Image: "./assets/badges/quiz_beginner.png"},
	2: {Name: "Advanced Ace", Image: "./assets/badges/quiz_advanced.png"},
	3: {Name: "Grandmaster", Image: "./assets/badges/quiz_expert.png"},
}
