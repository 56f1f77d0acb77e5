package caretaker

// Title ranks a caretaker by score for the leaderboard.
func (c *Caretaker) Title() string {
	return TitleForScore(c.Score())
}

func TitleForScore(score int) string {
	switch {
	case score >= 200:
		return "Guardian of All Whiskers 👑"
	case score >= 100:
		return "Shelter Legend 🏅"
	case score >= 50:
		return "Cat Whisperer 🐾"
	case score >= 20:
		return "Trusted Caretaker 🧶"
	case score >= 5:
		return "Shelter Volunteer 🧹"
	default:
		return "New Friend 🐱"
	}
}
