package analyze

import (
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"unionfrom-generator/internal/derive"
)

// Duplicate is a conversion whose payload type is identical to the payload
// of an earlier conversion of the same union.
type Duplicate struct {
	Conversion derive.Conversion
	First      derive.Conversion
}

// DuplicatePayloads returns the conversions of one union that share a payload
// type with an earlier one, in order. Payloads without type information are
// skipped.
func DuplicatePayloads(info *types.Info, convs []derive.Conversion) []Duplicate {
	if info == nil {
		return nil
	}

	var (
		seen typeutil.Map
		dups []Duplicate
	)

	for _, conv := range convs {
		t := info.TypeOf(conv.Payload)
		if t == nil || t == types.Typ[types.Invalid] {
			continue
		}

		if first, ok := seen.At(t).(derive.Conversion); ok {
			dups = append(dups, Duplicate{Conversion: conv, First: first})
			continue
		}

		seen.Set(t, conv)
	}

	return dups
}
