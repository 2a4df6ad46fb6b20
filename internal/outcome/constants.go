package outcome

// Symbol constants - exact wire strings
const (
	SymbolCherry = "Cherry"
	SymbolBell   = "Bell"
	SymbolSeven  = "Seven"
	SymbolBar    = "Bar"
	SymbolLemon  = "Lemon"
)

// ReelSymbols is the fixed alphabet each reel draws from, uniformly.
var ReelSymbols = []string{SymbolCherry, SymbolBell, SymbolSeven, SymbolBar, SymbolLemon}

// Payout multipliers for three matching symbols. Any matching symbol outside
// this table pays the default multiplier.
const (
	CherryMultiplier  = 10
	SevenMultiplier   = 5
	DefaultMultiplier = 3
)

// Result message templates
const (
	MsgWinFormat = "Congratulations! You won $%s!"
	MsgLose      = "Better luck next time!"
)
