package ws

const (
	// client - server
	MsgWebViewReady   = "webViewReady"
	MsgCreateGamePost = "createGamePost"
	MsgRecordGuess    = "recordGuess"
	MsgRevealShape    = "revealShape"
	MsgRefreshPost    = "refreshPost"

	// server - client
	MsgInitialData   = "initialData"
	MsgGameCreated   = "gameCreated"
	MsgGuessResponse = "guessResponse"
	MsgRevealResults = "revealResults"
	MsgToast         = "toast"
	MsgError         = "error"
)
