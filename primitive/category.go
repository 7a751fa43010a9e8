package primitive

// CategoryEnum selects which groups of leaf generators a Source registers.
type CategoryEnum int

const (
	CategoryNumber     CategoryEnum = 1 << iota // int, uint and float kinds of every width
	CategoryBool                                // bool
	CategoryText                                // string and []byte
	CategoryTime                                // time.Time and time.Duration
	CategoryIdentifier                          // uuid.UUID

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected
)

// Kinds returns the kinds enabled by the category set, in kind order.
func (c CategoryEnum) Kinds() []KindEnum {
	var out []KindEnum

	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		if c&categoryOf(kind) != 0 {
			out = append(out, kind)
		}
	}

	return out
}

func categoryOf(k KindEnum) CategoryEnum {
	switch {
	case k.IsNumber():
		return CategoryNumber
	case k == KindBool:
		return CategoryBool
	case k == KindString, k == KindBytes:
		return CategoryText
	case k == KindTime, k == KindDuration:
		return CategoryTime
	case k == KindUUID:
		return CategoryIdentifier
	default:
		return CategoryNone
	}
}
