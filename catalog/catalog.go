package catalog

import (
	_ "embed"
	"fmt"

	wf "github.com/cordialsys/walletfee"
	"github.com/cordialsys/walletfee/config"
	"github.com/cordialsys/walletfee/normalize"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/btree"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultData []byte

// ConfigSection is the section of the config file that overrides the catalog.
const ConfigSection = "walletfee"

// Document is the serialized form of the catalog, keyed by arbitrary lowercase ids.
type Document struct {
	Chains map[string]*wf.ChainConfig      `yaml:"chains,omitempty"`
	Tokens map[string]*wf.TokenAssetConfig `yaml:"tokens,omitempty"`
}

func ParseDocument(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return doc, nil
}

// DefaultDocument is the catalog shipped with the binary.
func DefaultDocument() *Document {
	doc, err := ParseDocument(defaultData)
	if err != nil {
		panic(err)
	}
	return doc
}

// Catalog is the static chain and token metadata. It is read only once built
// and safe for concurrent use.
type Catalog struct {
	chains *btree.Map[wf.NativeAsset, *wf.ChainConfig]
	// chain/normalized-contract -> token
	tokens *btree.Map[string, *wf.TokenAssetConfig]
}

func tokenKey(chain wf.NativeAsset, contract wf.ContractAddress) string {
	return string(chain) + "/" + normalize.Normalize(string(contract), chain)
}

// The catalog owns its entries, so doc is left as it was.
func copyChain(entry *wf.ChainConfig) *wf.ChainConfig {
	chain := *entry
	if entry.Gasless != nil {
		gasless := *entry.Gasless
		chain.Gasless = &gasless
	}
	return &chain
}

func New(doc *Document) (*Catalog, error) {
	c := &Catalog{
		chains: btree.NewMap[wf.NativeAsset, *wf.ChainConfig](0),
		tokens: btree.NewMap[string, *wf.TokenAssetConfig](0),
	}
	for id, entry := range doc.Chains {
		if entry == nil {
			continue
		}
		chain := copyChain(entry)
		native, ok := wf.LookupNativeAsset(string(chain.Chain))
		if !ok {
			return nil, fmt.Errorf("chain %s: unsupported chain %q", id, chain.Chain)
		}
		chain.Chain = native
		if chain.Driver == "" {
			chain.Driver = native.Driver()
		}
		if chain.Decimals < 0 {
			return nil, fmt.Errorf("chain %s: invalid decimals %d", id, chain.Decimals)
		}
		if _, replaced := c.chains.Set(native, chain); replaced {
			logrus.WithField("chain", native).Warn("multiple catalog entries for chain")
		}
	}
	for id, entry := range doc.Tokens {
		if entry == nil {
			continue
		}
		token := *entry
		native, ok := wf.LookupNativeAsset(string(token.Chain))
		if !ok {
			return nil, fmt.Errorf("token %s: unsupported chain %q", id, token.Chain)
		}
		if _, ok := c.chains.Get(native); !ok {
			return nil, fmt.Errorf("token %s: chain %s is not in the catalog", id, native)
		}
		if wf.IsNativeContract(native, token.Contract) {
			return nil, fmt.Errorf("token %s: missing contract", id)
		}
		if token.Decimals < 0 {
			return nil, fmt.Errorf("token %s: invalid decimals %d", id, token.Decimals)
		}
		token.Chain = native
		token.Contract = wf.ContractAddress(normalize.Normalize(string(token.Contract), native))
		if _, replaced := c.tokens.Set(tokenKey(native, token.Contract), &token); replaced {
			logrus.WithFields(logrus.Fields{
				"chain":    native,
				"contract": token.Contract,
			}).Warn("multiple catalog entries for token")
		}
	}
	logrus.WithFields(logrus.Fields{
		"chains": c.chains.Len(),
		"tokens": c.tokens.Len(),
	}).Debug("loaded catalog")
	return c, nil
}

// Default builds the catalog shipped with the binary.
func Default() *Catalog {
	c, err := New(DefaultDocument())
	if err != nil {
		panic(err)
	}
	return c
}

// Load builds the default catalog overridden by the "walletfee" section of the config file.
func Load() (*Catalog, error) {
	doc := &Document{}
	if err := config.RequireConfig(ConfigSection, doc, DefaultDocument()); err != nil {
		return nil, err
	}
	return New(doc)
}

func (c *Catalog) Chain(chain wf.NativeAsset) (*wf.ChainConfig, bool) {
	return c.chains.Get(chain)
}

// Chains are sorted by chain.
func (c *Catalog) Chains() []*wf.ChainConfig {
	chains := make([]*wf.ChainConfig, 0, c.chains.Len())
	c.chains.Scan(func(_ wf.NativeAsset, chain *wf.ChainConfig) bool {
		chains = append(chains, chain)
		return true
	})
	return chains
}

func (c *Catalog) Token(chain wf.NativeAsset, contract wf.ContractAddress) (*wf.TokenAssetConfig, bool) {
	return c.tokens.Get(tokenKey(chain, contract))
}

// Tokens of a chain, sorted by normalized contract.
func (c *Catalog) Tokens(chain wf.NativeAsset) []*wf.TokenAssetConfig {
	prefix := string(chain) + "/"
	tokens := []*wf.TokenAssetConfig{}
	c.tokens.Ascend(prefix, func(key string, token *wf.TokenAssetConfig) bool {
		if len(key) < len(prefix) || key[:len(prefix)] != prefix {
			return false
		}
		tokens = append(tokens, token)
		return true
	})
	return tokens
}

// TokenBySymbol finds a token of a chain by its symbol, e.g. "USDT".
func (c *Catalog) TokenBySymbol(chain wf.NativeAsset, symbol string) (*wf.TokenAssetConfig, bool) {
	for _, token := range c.Tokens(chain) {
		if token.Symbol == symbol {
			return token, true
		}
	}
	return nil, false
}

func (c *Catalog) IsNative(chain wf.NativeAsset, contract wf.ContractAddress) bool {
	return wf.IsNativeContract(chain, contract)
}

// Decimals of the chain's native asset or one of its tokens.
func (c *Catalog) Decimals(chain wf.NativeAsset, contract wf.ContractAddress) (int32, error) {
	if c.IsNative(chain, contract) {
		chainCfg, ok := c.Chain(chain)
		if !ok {
			return 0, fmt.Errorf("chain not found: %s", chain)
		}
		return chainCfg.Decimals, nil
	}
	token, ok := c.Token(chain, contract)
	if !ok {
		return 0, fmt.Errorf("token %s not found on chain %s", contract, chain)
	}
	return token.Decimals, nil
}
