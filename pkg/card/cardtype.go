package card

// CardType selects the card family the reader is configured for.
type CardType int

const (
	Other CardType = iota
	Mifare
	UltraLight
	CPU
	ISO14443B
	ISO15693
)

var cardTypeNames = map[CardType]string{
	Other:      "Other",
	Mifare:     "Mifare",
	UltraLight: "UltraLight",
	CPU:        "CPU",
	ISO14443B:  "ISO14443B",
	ISO15693:   "ISO15693",
}

// ParseCardType maps a card type name to its value. Unknown names map to Other.
func ParseCardType(s string) CardType {
	for t, name := range cardTypeNames {
		if name == s {
			return t
		}
	}
	return Other
}

func (t CardType) String() string {
	if name, ok := cardTypeNames[t]; ok {
		return name
	}
	return cardTypeNames[Other]
}
