package walletfee

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// AmountBlockchain is a big integer amount in the smallest unit of a token.
// Arithmetic never mutates the receiver or the argument.
type AmountBlockchain big.Int

// AmountHumanReadable is a decimal amount as a human expects it for readability.
type AmountHumanReadable decimal.Decimal

func (amount AmountBlockchain) String() string {
	bigInt := big.Int(amount)
	return bigInt.String()
}

// Int converts an AmountBlockchain into a fresh *big.Int
func (amount AmountBlockchain) Int() *big.Int {
	bigInt := big.Int(amount)
	return new(big.Int).Set(&bigInt)
}

func (amount AmountBlockchain) Sign() int {
	bigInt := big.Int(amount)
	return bigInt.Sign()
}

// Uint64 converts an AmountBlockchain into uint64
func (amount AmountBlockchain) Uint64() uint64 {
	bigInt := big.Int(amount)
	return bigInt.Uint64()
}

// Use the underlying big.Int.Cmp()
func (amount *AmountBlockchain) Cmp(other *AmountBlockchain) int {
	return amount.Int().Cmp(other.Int())
}

func (amount *AmountBlockchain) Equal(other *AmountBlockchain) bool {
	return amount.Cmp(other) == 0
}

// Use the underlying big.Int.Add()
func (amount *AmountBlockchain) Add(x *AmountBlockchain) AmountBlockchain {
	sum := amount.Int()
	return AmountBlockchain(*sum.Add(sum, x.Int()))
}

// Use the underlying big.Int.Sub()
func (amount *AmountBlockchain) Sub(x *AmountBlockchain) AmountBlockchain {
	diff := amount.Int()
	return AmountBlockchain(*diff.Sub(diff, x.Int()))
}

// Use the underlying big.Int.Mul()
func (amount *AmountBlockchain) Mul(x *AmountBlockchain) AmountBlockchain {
	prod := amount.Int()
	return AmountBlockchain(*prod.Mul(prod, x.Int()))
}

// Div is truncated division. Dividing by zero yields zero.
func (amount *AmountBlockchain) Div(x *AmountBlockchain) AmountBlockchain {
	if x.IsZero() {
		return NewAmountBlockchainFromUint64(0)
	}
	quot := amount.Int()
	return AmountBlockchain(*quot.Quo(quot, x.Int()))
}

// MulDiv computes amount * num / den with the full precision product,
// so no rounding happens before the final division.
// A zero denominator yields zero.
func (amount *AmountBlockchain) MulDiv(num *AmountBlockchain, den *AmountBlockchain) AmountBlockchain {
	prod := amount.Mul(num)
	return prod.Div(den)
}

// ClampZero returns max(0, amount).
func (amount *AmountBlockchain) ClampZero() AmountBlockchain {
	if amount.Sign() < 0 {
		return NewAmountBlockchainFromUint64(0)
	}
	return AmountBlockchain(*amount.Int())
}

// SubClamped returns max(0, amount - x).
func (amount *AmountBlockchain) SubClamped(x *AmountBlockchain) AmountBlockchain {
	diff := amount.Sub(x)
	return diff.ClampZero()
}

var zero = big.NewInt(0)

func (amount *AmountBlockchain) IsZero() bool {
	return amount.Int().Cmp(zero) == 0
}

func (amount *AmountBlockchain) ToHuman(decimals int32) AmountHumanReadable {
	dec := decimal.NewFromBigInt(amount.Int(), -decimals)
	return AmountHumanReadable(dec)
}

func MinAmount(a, b AmountBlockchain) AmountBlockchain {
	if a.Cmp(&b) <= 0 {
		return a
	}
	return b
}

func MaxAmount(a, b AmountBlockchain) AmountBlockchain {
	if a.Cmp(&b) >= 0 {
		return a
	}
	return b
}

// AmountPtr returns a pointer to a copy of the amount, for use as an optional value.
func AmountPtr(amount AmountBlockchain) *AmountBlockchain {
	return &amount
}

// OptionalEqual compares two optional amounts. Two absent amounts are equal,
// an absent amount never equals a present one.
func OptionalEqual(a, b *AmountBlockchain) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// NewAmountBlockchainFromUint64 creates a new AmountBlockchain from a uint64
func NewAmountBlockchainFromUint64(u64 uint64) AmountBlockchain {
	bigInt := new(big.Int).SetUint64(u64)
	return AmountBlockchain(*bigInt)
}

// NewAmountBlockchainFromInt64 creates a new AmountBlockchain from an int64.
// Negative inputs are only meaningful to exercise clamping.
func NewAmountBlockchainFromInt64(i64 int64) AmountBlockchain {
	return AmountBlockchain(*big.NewInt(i64))
}

// NewAmountBlockchainFromStr creates a new AmountBlockchain from a string
func NewAmountBlockchainFromStr(str string) AmountBlockchain {
	bigInt, ok := new(big.Int).SetString(str, 0)
	if !ok {
		return NewAmountBlockchainFromUint64(0)
	}
	return AmountBlockchain(*bigInt)
}

// ParseAmountBlockchain is like NewAmountBlockchainFromStr but reports invalid input.
func ParseAmountBlockchain(str string) (AmountBlockchain, error) {
	bigInt, ok := new(big.Int).SetString(strings.TrimSpace(str), 0)
	if !ok {
		return AmountBlockchain{}, fmt.Errorf("not a valid big integer: %s", str)
	}
	return AmountBlockchain(*bigInt), nil
}

// NewAmountHumanReadableFromStr creates a new AmountHumanReadable from a string
func NewAmountHumanReadableFromStr(str string) (AmountHumanReadable, error) {
	decimal, err := decimal.NewFromString(str)
	return AmountHumanReadable(decimal), err
}

func (amount AmountHumanReadable) Decimal() decimal.Decimal {
	return decimal.Decimal(amount)
}

func (amount AmountHumanReadable) ToBlockchain(decimals int32) AmountBlockchain {
	factor := decimal.NewFromInt32(10).Pow(decimal.NewFromInt32(decimals))
	raised := ((decimal.Decimal)(amount)).Mul(factor)
	return AmountBlockchain(*raised.BigInt())
}

// ToBlockchainExact refuses amounts with more fractional digits than the asset has.
func (amount AmountHumanReadable) ToBlockchainExact(decimals int32) (AmountBlockchain, error) {
	dec := decimal.Decimal(amount)
	if !dec.Truncate(decimals).Equal(dec) {
		return AmountBlockchain{}, fmt.Errorf("%s has more than %d decimal places", dec.String(), decimals)
	}
	return amount.ToBlockchain(decimals), nil
}

func (amount AmountHumanReadable) String() string {
	return decimal.Decimal(amount).String()
}

var _ json.Marshaler = AmountHumanReadable{}
var _ json.Unmarshaler = &AmountHumanReadable{}
var _ yaml.Unmarshaler = &AmountHumanReadable{}
var _ yaml.Marshaler = AmountHumanReadable{}
var _ yaml.IsZeroer = AmountHumanReadable{}

func (b AmountHumanReadable) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

func (b AmountHumanReadable) IsZero() bool {
	return decimal.Decimal(b).IsZero()
}

func (b *AmountHumanReadable) UnmarshalYAML(node *yaml.Node) error {
	value := strings.TrimSpace(node.Value)
	value = strings.TrimPrefix(value, "\"")
	value = strings.TrimSuffix(value, "\"")
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid decimal amount: %v", err)
	}
	*b = AmountHumanReadable(dec)
	return nil
}

func (b AmountHumanReadable) MarshalJSON() ([]byte, error) {
	return []byte("\"" + b.String() + "\""), nil
}

func (b *AmountHumanReadable) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	str := strings.Trim(string(p), "\"")
	decimal, err := decimal.NewFromString(str)
	if err != nil {
		return err
	}
	*b = AmountHumanReadable(decimal)
	return nil
}

var _ json.Marshaler = AmountBlockchain{}
var _ json.Unmarshaler = &AmountBlockchain{}
var _ yaml.Unmarshaler = &AmountBlockchain{}
var _ yaml.Marshaler = AmountBlockchain{}

func (b AmountBlockchain) MarshalJSON() ([]byte, error) {
	return []byte("\"" + b.String() + "\""), nil
}

func (b *AmountBlockchain) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	str := strings.Trim(string(p), "\"")
	var z big.Int
	_, ok := z.SetString(str, 0)
	if !ok {
		return fmt.Errorf("not a valid big integer: %s", p)
	}
	*b = AmountBlockchain(z)
	return nil
}

func (b AmountBlockchain) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

func (b *AmountBlockchain) UnmarshalYAML(node *yaml.Node) error {
	amount, err := ParseAmountBlockchain(strings.Trim(node.Value, "\""))
	if err != nil {
		return err
	}
	*b = amount
	return nil
}

// TOML documents decode string amounts through encoding.TextUnmarshaler.
func (b *AmountBlockchain) UnmarshalText(p []byte) error {
	amount, err := ParseAmountBlockchain(string(p))
	if err != nil {
		return err
	}
	*b = amount
	return nil
}
