package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/modelnet/modelnet-contract/rpc/scoring"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	oracleWIF := flag.String("wif", "", "WIF of the oracle account registered in the Scoring contract")
	contractHash := flag.String("contract", "", "Scoring contract hash (LE hex)")
	accountAddr := flag.String("account", "", "Neo address of the contributor to score")
	predictorEndpoint := flag.String("predictor", "", "HTTP endpoint of the prediction service")
	interval := flag.Duration("interval", time.Minute, "Polling interval")
	fallback := flag.String("fallback", "correct", "Verdict when the predictor is unreachable: correct, incorrect or fail")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *oracleWIF == "":
		log.Fatal("missing oracle WIF")
	case *contractHash == "":
		log.Fatal("missing Scoring contract hash")
	case *accountAddr == "":
		log.Fatal("missing contributor address")
	case *predictorEndpoint == "":
		log.Fatal("missing predictor endpoint")
	}

	switch *fallback {
	case "correct", "incorrect", "fail":
	default:
		log.Fatalf("unknown fallback policy '%s'", *fallback)
	}

	h, err := util.Uint160DecodeStringLE(*contractHash)
	if err != nil {
		log.Fatal(fmt.Errorf("decode Scoring contract hash: %w", err))
	}

	subject, err := address.StringToUint160(*accountAddr)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contributor address: %w", err))
	}

	contract, err := newScoringContract(*neoRPCEndpoint, *oracleWIF, h)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	predictor := newPredictor(*predictorEndpoint, *fallback)

	log.Printf("Scoring contributor '%s' every %s\n", *accountAddr, *interval)

	err = run(ctx, contract, predictor, subject, *interval)
	if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, contract *scoring.Contract, p *predictor, subject util.Uint160, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		isCorrect, err := p.verdict(ctx, subject)
		if err != nil {
			return fmt.Errorf("get predictor verdict: %w", err)
		}

		txHash, vub, err := contract.UpdateScore(subject, isCorrect)
		if err != nil {
			return fmt.Errorf("send updateScore transaction: %w", err)
		}

		log.Printf("Submitted verdict %t: tx %s (valid until block %d)\n", isCorrect, txHash.StringLE(), vub)

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

// newScoringContract dials the Neo RPC server and returns a Scoring contract
// wrapper signing with the given WIF. Connection and all requests are done
// within 15s timeout.
func newScoringContract(endpoint, wif string, contractHash util.Uint160) (*scoring.Contract, error) {
	acc, err := wallet.NewAccountFromWIF(wif)
	if err != nil {
		return nil, fmt.Errorf("decode oracle account: %w", err)
	}

	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		return nil, fmt.Errorf("init actor: %w", err)
	}

	return scoring.New(act, contractHash), nil
}
