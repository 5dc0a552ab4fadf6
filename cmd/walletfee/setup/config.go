package setup

import (
	"context"
	"fmt"
	"os"

	wf "github.com/cordialsys/walletfee"
	"github.com/cordialsys/walletfee/catalog"
	"github.com/cordialsys/walletfee/config/constants"
	"github.com/sirupsen/logrus"
)

type ContextKey string

const ContextCatalog ContextKey = "catalog"
const ContextChain ContextKey = "chain"

func WrapCatalog(ctx context.Context, cat *catalog.Catalog) context.Context {
	return context.WithValue(ctx, ContextCatalog, cat)
}

func WrapChain(ctx context.Context, chain *wf.ChainConfig) context.Context {
	return context.WithValue(ctx, ContextChain, chain)
}

func UnwrapCatalog(ctx context.Context) *catalog.Catalog {
	return ctx.Value(ContextCatalog).(*catalog.Catalog)
}

func UnwrapChain(ctx context.Context) *wf.ChainConfig {
	return ctx.Value(ContextChain).(*wf.ChainConfig)
}

func LoadCatalog(args *Args) (*catalog.Catalog, error) {
	if args.ConfigPath != "" {
		// the config layer only reads its location from the environment
		if err := os.Setenv(constants.ConfigEnv, args.ConfigPath); err != nil {
			return nil, err
		}
		logrus.WithField("config", args.ConfigPath).Debug("using config file")
	}
	return catalog.Load()
}

func LoadChain(cat *catalog.Catalog, chain string) (*wf.ChainConfig, error) {
	if chain == "" {
		return nil, fmt.Errorf("--chain required")
	}
	nativeAsset, ok := wf.LookupNativeAsset(chain)
	if !ok {
		return nil, fmt.Errorf("invalid chain: %s\noptions: %v", chain, wf.NativeAssetList)
	}
	chainConfig, ok := cat.Chain(nativeAsset)
	if !ok {
		return nil, fmt.Errorf("chain not found in catalog: %v", nativeAsset)
	}
	return chainConfig, nil
}

func CreateContext(ctx context.Context, cat *catalog.Catalog) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return WrapCatalog(ctx, cat)
}
