package governance

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NullSentinel stands in for null values in a canonical string.
const NullSentinel = "∅null"

// identityNamespace is the name-based UUID namespace of every deterministic id.
var identityNamespace = uuid.MustParse("9b0f6c1e-4d52-5a7e-8c3b-2f61d0a4e7b9")

// DeterministicID identifies a logical parameter object independently of key order.
type DeterministicID struct {
	EntityID        string `json:"entityId"`
	CanonicalString string `json:"canonicalString"`
	Hash            string `json:"hash"`
}

// BuildDeterministicID canonicalizes params and derives its hash and entity id.
// params may be any JSON-marshalable value.
func BuildDeterministicID(params any) (DeterministicID, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return DeterministicID{}, fmt.Errorf("%w: parameters are not serializable: %v", apperrors.ErrValidation, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return DeterministicID{}, fmt.Errorf("%w: parameters are not valid JSON: %v", apperrors.ErrValidation, err)
	}

	var sb strings.Builder
	if err := writeCanonical(&sb, generic); err != nil {
		return DeterministicID{}, err
	}
	canonical := sb.String()

	sum := sha256.Sum256([]byte(canonical))
	return DeterministicID{
		EntityID:        uuid.NewSHA1(identityNamespace, []byte(canonical)).String(),
		CanonicalString: canonical,
		Hash:            hex.EncodeToString(sum[:]),
	}, nil
}

func writeCanonical(sb *strings.Builder, v any) error {
	switch t := v.(type) {
	case nil:
		sb.WriteString(NullSentinel)
	case bool:
		sb.WriteString(strconv.FormatBool(t))
	case string:
		sb.WriteString(strconv.Quote(t))
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return fmt.Errorf("%w: number %s cannot be normalized: %v", apperrors.ErrValidation, t, err)
		}
		sb.WriteString(d.String())
	case []any:
		sb.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeCanonical(sb, item); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			if err := writeCanonical(sb, t[k]); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	default:
		return fmt.Errorf("%w: unsupported value of type %T", apperrors.ErrValidation, v)
	}
	return nil
}
