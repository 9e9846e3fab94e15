package synth

import (
	"fmt"
	"strings"
)

var (
	firstNames = []string{
		"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank",
		"Grace", "Henry", "Irene", "Jack", "Karen", "Leo", "Maria", "Nathan",
		"Olivia", "Peter", "Quinn", "Rachel", "Samuel", "Tina", "Victor", "Wendy",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
		"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	}
	emailDomains = []string{"example.com", "test.com", "demo.com", "mail.com"}
	streetNames  = []string{
		"Main Street", "Oak Avenue", "Maple Drive", "Cedar Lane", "Elm Street",
		"Pine Road", "Washington Boulevard", "Lake View Court", "Hill Street",
		"River Road", "Park Avenue", "Sunset Drive",
	}
	cities = []string{
		"Springfield", "Riverton", "Fairview", "Georgetown", "Clinton",
		"Salem", "Madison", "Franklin", "Arlington", "Clayton", "Bristol",
		"Ashland", "Oxford", "Milton", "Dayton", "Auburn",
	}
	stateAbbrs = []string{
		"AL", "AZ", "CA", "CO", "FL", "GA", "IL", "IN", "MA", "MI", "MN",
		"MO", "NC", "NJ", "NY", "OH", "OR", "PA", "TN", "TX", "VA", "WA",
	}
	words = []string{
		"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "theta", "sigma",
		"summit", "horizon", "ember", "cascade", "drift", "harbor", "meadow",
		"prism", "quartz", "ridge", "sable", "tundra", "vista", "willow",
		"zephyr", "onyx", "cobalt", "juniper", "lumen", "marble", "nectar",
	}
	reviewTitles = []string{
		"Exceeded my expectations in every way",
		"Solid quality for the price",
		"Exactly as described and arrived quickly",
		"Would recommend this to anyone",
		"Not quite what I hoped for",
		"Works well for everyday use",
		"Great value and sturdy build",
		"A little disappointing out of the box",
	}
	reviewSentences = []string{
		"The build quality feels solid and well made.",
		"Shipping was fast and the packaging was secure.",
		"The color matches the photos exactly.",
		"Setup took only a few minutes.",
		"I have been using it daily for a few weeks now.",
		"Customer service was responsive when I had a question.",
		"The size runs slightly smaller than expected.",
		"Battery life is better than advertised.",
		"Instructions could have been clearer.",
		"It replaced an older model and the difference is noticeable.",
	}
)

// Faker methods produce realistic-looking field values from the session's
// seeded stream. Each draw advances the stream, so call order matters for
// reproducibility.

func (s *Session) FirstName() string {
	return s.Choice(firstNames)
}

func (s *Session) LastName() string {
	return s.Choice(lastNames)
}

// Email is unique within a session: a per-session counter is baked into the
// local part.
func (s *Session) Email() string {
	s.emailSeq++
	return fmt.Sprintf("user%d_%d@%s", s.emailSeq, s.Int(0, 100000), s.Choice(emailDomains))
}

func (s *Session) Phone() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", s.Int(200, 1000), s.Int(0, 1000), s.Int(0, 10000))
}

func (s *Session) StreetAddress() string {
	return fmt.Sprintf("%d %s", s.Int(1, 10000), s.Choice(streetNames))
}

func (s *Session) City() string {
	return s.Choice(cities)
}

func (s *Session) StateAbbr() string {
	return s.Choice(stateAbbrs)
}

func (s *Session) PostalCode() string {
	return fmt.Sprintf("%05d", s.Int(0, 100000))
}

func (s *Session) Word() string {
	return s.Choice(words)
}

// TitleWord returns a capitalized product-style word.
func (s *Session) TitleWord() string {
	w := s.Word()
	return strings.ToUpper(w[:1]) + w[1:]
}

func (s *Session) Sentence() string {
	return s.Choice(reviewTitles) + "."
}

func (s *Session) Paragraph(n int) string {
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, s.Choice(reviewSentences))
	}
	return strings.Join(parts, " ")
}
