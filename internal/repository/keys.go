package repository

// Persisted key layout. All values are strings: JSON documents or decimal
// counters. The layout is shared with the webview renderer's expectations,
// so key names are part of the external contract.
const (
	keyGamesList    = "games_list"
	keyTotalGames   = "total_games"
	keyTotalGuesses = "total_guesses"
	keyTotalCorrect = "total_correct_guesses"
	keyHubPost      = "hub_post"
)

func keyGameData(gameID string) string {
	return "data_" + gameID
}

func keyCanvas(gameID string) string {
	return "canvas_" + gameID
}

func keyGuessCount(gameID string) string {
	return "guesscount_" + gameID
}

func keyAllGuesses(gameID string) string {
	return "allguesses_" + gameID
}

func keyRevealed(gameID string) string {
	return "revealed_" + gameID
}

func keyUserGuess(gameID, username string) string {
	return "user_" + gameID + "_" + username
}

func keyIDIndex(shortCode string) string {
	return "id_index_" + shortCode
}
