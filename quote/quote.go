package quote

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	wf "github.com/cordialsys/walletfee"
	"github.com/cordialsys/walletfee/errors"
	"github.com/cordialsys/walletfee/explain"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Quote is everything the quote and balance providers know about a pending
// transfer or swap. Amounts that were not quoted are left nil.
// Amounts in TOML documents must be strings.
type Quote struct {
	// Amount being sent
	Amount         *wf.AmountBlockchain `yaml:"amount,omitempty" json:"amount,omitempty" toml:"amount,omitempty"`
	NetworkFee     *wf.AmountBlockchain `yaml:"network_fee,omitempty" json:"network_fee,omitempty" toml:"network_fee,omitempty"`
	RealNetworkFee *wf.AmountBlockchain `yaml:"real_network_fee,omitempty" json:"real_network_fee,omitempty" toml:"real_network_fee,omitempty"`
	DieselFee      *wf.AmountBlockchain `yaml:"diesel_fee,omitempty" json:"diesel_fee,omitempty" toml:"diesel_fee,omitempty"`
	DieselStatus   wf.DieselStatus      `yaml:"diesel_status,omitempty" json:"diesel_status,omitempty" toml:"diesel_status,omitempty"`

	NativeBalance *wf.AmountBlockchain `yaml:"native_balance,omitempty" json:"native_balance,omitempty" toml:"native_balance,omitempty"`
	TokenBalance  *wf.AmountBlockchain `yaml:"token_balance,omitempty" json:"token_balance,omitempty" toml:"token_balance,omitempty"`
	StarsBalance  *wf.AmountBlockchain `yaml:"stars_balance,omitempty" json:"stars_balance,omitempty" toml:"stars_balance,omitempty"`

	ServiceFee         *wf.AmountBlockchain `yaml:"service_fee,omitempty" json:"service_fee,omitempty" toml:"service_fee,omitempty"`
	ServiceFeeIsNative bool                 `yaml:"service_fee_is_native,omitempty" json:"service_fee_is_native,omitempty" toml:"service_fee_is_native,omitempty"`
}

type Format string

const (
	FormatYaml Format = "yaml"
	FormatJson Format = "json"
	FormatToml Format = "toml"
)

func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYaml, nil
	case ".json":
		return FormatJson, nil
	case ".toml":
		return FormatToml, nil
	}
	return "", fmt.Errorf("unsupported quote file extension: %q", filepath.Ext(path))
}

func Decode(data []byte, format Format) (*Quote, error) {
	q := &Quote{}
	var err error
	switch format {
	case FormatYaml:
		err = yaml.Unmarshal(data, q)
	case FormatJson:
		err = json.Unmarshal(data, q)
	case FormatToml:
		err = toml.Unmarshal(data, q)
	default:
		return nil, fmt.Errorf("unsupported quote format: %q", format)
	}
	if err != nil {
		return nil, errors.InvalidQuotef("could not decode %s quote: %v", format, err)
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Load a quote from a yaml, json or toml file.
func Load(path string) (*Quote, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read quote: %w", err)
	}
	return Decode(data, format)
}

func (q *Quote) Validate() error {
	if q.DieselStatus != "" && !q.DieselStatus.IsValid() {
		return errors.InvalidQuotef("unknown diesel status %q, options: %v", q.DieselStatus, wf.DieselStatusList)
	}
	amounts := []struct {
		name   string
		amount *wf.AmountBlockchain
	}{
		{"amount", q.Amount},
		{"network_fee", q.NetworkFee},
		{"real_network_fee", q.RealNetworkFee},
		{"diesel_fee", q.DieselFee},
		{"native_balance", q.NativeBalance},
		{"token_balance", q.TokenBalance},
		{"stars_balance", q.StarsBalance},
		{"service_fee", q.ServiceFee},
	}
	for _, a := range amounts {
		if a.amount != nil && a.amount.Sign() < 0 {
			return errors.InvalidQuotef("%s must not be negative: %s", a.name, a.amount.String())
		}
	}
	return nil
}

// FeeArgs are the engine inputs for sending a token described by this quote.
func (q *Quote) FeeArgs(tokenIsNative bool) explain.FeeArgs {
	return explain.FeeArgs{
		TokenIsNative:      tokenIsNative,
		NetworkFee:         q.NetworkFee,
		RealNetworkFee:     q.RealNetworkFee,
		DieselFee:          q.DieselFee,
		DieselStatus:       q.DieselStatus,
		NativeBalance:      q.NativeBalance,
		ServiceFee:         q.ServiceFee,
		ServiceFeeIsNative: q.ServiceFeeIsNative,
	}
}

func (q *Quote) Balances() explain.Balances {
	return explain.Balances{
		Token:  q.TokenBalance,
		Native: q.NativeBalance,
		Stars:  q.StarsBalance,
	}
}

// SentAmount is the amount being sent, zero when unknown.
func (q *Quote) SentAmount() wf.AmountBlockchain {
	if q.Amount == nil {
		return wf.NewAmountBlockchainFromUint64(0)
	}
	return *q.Amount
}
