// Package game implements the ten-level word puzzle: the guess grid, the
// per-tile classification, the keyboard marking and the level progression.
// It has no UI dependencies; the platform renders through a Surface and
// drives time through a Scheduler.
package game

// Level is one target word and the text shown while it is played.
type Level struct {
	Target     string
	Header     string
	WinMessage string
}

// Width returns the number of letters in the level's target word.
func (l Level) Width() int {
	return len([]rune(l.Target))
}

// DefaultLevels is the built-in ten-level campaign.
var DefaultLevels = []Level{
	{Target: "jogar", Header: "tahigna 1/10", WinMessage: "Parabéns, mas ainda faltam 9 palavras!"},
	{Target: "termo", Header: "tahgina 2/10", WinMessage: "Não desista, faltam 8!"},
	{Target: "legal", Header: "taghina 3/10", WinMessage: "Faltam 7, agora as coisas vão ficar um pouco mais difíceis!"},
	{Target: "amor", Header: "tgahina 4/10", WinMessage: "Essa foi fácil!"},
	{Target: "minha", Header: "gtahina 5/10", WinMessage: "Parabéns! Só faltam 5!"},
	{Target: "vida", Header: "gathina 6/10", WinMessage: "Ainda está fácil, mas as coisas vão ficar mais difíceis!"},
	{Target: "voce", Header: "gathnia 7/10", WinMessage: "Essa foi a última fácil, a próxima terá 6 letras!"},
	{Target: "aceita", Header: "gathnia 8/10", WinMessage: "Parabéns! A próxima será um pouco mais difícil"},
	{Target: "namorar", Header: "gatnhia 9/10", WinMessage: "Náo desista! Só falta uma!"},
	{Target: "comigo", Header: "gatinha 10/10", WinMessage: "Aguarde..."},
}
