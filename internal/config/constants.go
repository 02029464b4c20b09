package config

const Version = "0.3.0"

// SourceFileExt is the extension of lilith source files.
const SourceFileExt = ".llth"

// ErrorMessageCap bounds the rendered message of an Error value.
const ErrorMessageCap = 511

// DefaultPrompt is the REPL prompt when no config file overrides it.
const DefaultPrompt = "lilith> "

// DefaultHistoryFile is the readline history file, relative to $HOME.
const DefaultHistoryFile = ".lilith_history"

// Built-in function names
const (
	DefFuncName    = "def"
	PutFuncName    = "="
	LambdaFuncName = "\\"
	ListFuncName   = "list"
	HeadFuncName   = "head"
	TailFuncName   = "tail"
	InitFuncName   = "init"
	EvalFuncName   = "eval"
	JoinFuncName   = "join"
	LenFuncName    = "len"
	ConsFuncName   = "cons"
	IfFuncName     = "if"
	EqFuncName     = "=="
	NeqFuncName    = "!="
	ErrorFuncName  = "error"
	PrintFuncName  = "print"
)
