package component

// OnMenuScreen tags every entity spawned by the menu screen.
type OnMenuScreen struct{}

var OnMenuScreenComponent = NewComponent[OnMenuScreen]()

// OnGameScreen tags every entity spawned by the game screen.
type OnGameScreen struct{}

var OnGameScreenComponent = NewComponent[OnGameScreen]()

// LoadScreen marks images animated by the "load" binding.
type LoadScreen struct{}

var LoadScreenComponent = NewComponent[LoadScreen]()

// IdleScreen marks images animated by the "idle" binding.
type IdleScreen struct{}

var IdleScreenComponent = NewComponent[IdleScreen]()
