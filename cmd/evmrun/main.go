// Command evmrun executes a single bytecode program against an empty,
// in-memory account view and prints its outcome. It is the "run a program
// and print the result" tool every EVM-core repo in this corpus ships in
// some form (geth's cmd/evm, erigon's evm runner) — not an interactive
// debugger.
package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	gethlog "github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/mana-go/evmcore/core/types"
	"github.com/mana-go/evmcore/core/vm"
)

var forks = map[string]func() vm.Config{
	"frontier":          vm.FrontierConfig,
	"homestead":         vm.HomesteadConfig,
	"tangerinewhistle":  vm.TangerineWhistleConfig,
	"spuriousdragon":    vm.SpuriousDragonConfig,
	"byzantium":         vm.ByzantiumConfig,
	"constantinople":    vm.ConstantinopleConfig,
	"petersburg":        vm.PetersburgConfig,
	"istanbul":          vm.IstanbulConfig,
}

func main() {
	app := &cli.App{
		Name:  "evmrun",
		Usage: "run a bytecode program against an empty account view",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "code", Required: true, Usage: "hex-encoded bytecode (0x-prefixed or bare)"},
			&cli.StringFlag{Name: "input", Value: "", Usage: "hex-encoded call data"},
			&cli.Uint64Flag{Name: "gas", Value: 1_000_000, Usage: "gas limit"},
			&cli.StringFlag{Name: "value", Value: "0", Usage: "call value, decimal"},
			&cli.StringFlag{Name: "fork", Value: "istanbul", Usage: "fork config: " + forkNames()},
			&cli.BoolFlag{Name: "trace", Usage: "print a per-step struct log trace"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		gethlog.Error("evmrun failed", "err", err)
		os.Exit(1)
	}
}

func forkNames() string {
	names := make([]string, 0, len(forks))
	for name := range forks {
		names = append(names, name)
	}
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

func run(c *cli.Context) error {
	handler := gethlog.NewTerminalHandler(os.Stderr, false)
	gethlog.SetDefault(gethlog.NewLogger(handler))

	newCfg, ok := forks[c.String("fork")]
	if !ok {
		return fmt.Errorf("unknown fork %q (want one of: %s)", c.String("fork"), forkNames())
	}

	code, err := decodeHex(c.String("code"))
	if err != nil {
		return fmt.Errorf("decoding --code: %w", err)
	}
	input, err := decodeHex(c.String("input"))
	if err != nil {
		return fmt.Errorf("decoding --input: %w", err)
	}

	value, ok := new(big.Int).SetString(c.String("value"), 10)
	if !ok {
		return fmt.Errorf("invalid --value %q", c.String("value"))
	}
	var weiValue uint256.Int
	weiValue.SetFromBig(value)

	env := &vm.ExecEnv{
		Address:     types.BytesToAddress([]byte{0x01}),
		Caller:      types.BytesToAddress([]byte{0x02}),
		Origin:      types.BytesToAddress([]byte{0x02}),
		GasPrice:    new(uint256.Int),
		Value:       &weiValue,
		Input:       input,
		Code:        code,
		AccountView: newRunnerView(),
		BlockView:   newRunnerBlockView(),
		Config:      newCfg(),
	}

	in := vm.NewInterpreter()
	var tracer *vm.StructLogTracer
	if c.Bool("trace") {
		tracer = vm.NewStructLogTracer()
		in = in.WithLogger(tracer)
	}

	gethlog.Info("executing", "gas", c.Uint64("gas"), "fork", c.String("fork"), "code_len", len(code))
	result := in.Run(c.Uint64("gas"), env)

	if tracer != nil {
		for _, step := range tracer.Logs {
			fmt.Fprintf(os.Stderr, "pc=%-5d op=%-14s gas=%-10d cost=%-6d depth=%d\n",
				step.Pc, step.Op.String(), step.Gas, step.GasCost, step.Depth)
		}
	}

	switch {
	case result.Err != nil && !result.Reverted:
		gethlog.Error("execution failed", "err", result.Err)
		fmt.Println("failed")
		return nil
	case result.Reverted:
		fmt.Printf("reverted: %s\n", hex.EncodeToString(result.Output))
	default:
		fmt.Printf("output: %s\n", hex.EncodeToString(result.Output))
	}
	fmt.Printf("gas_remaining: %d\n", result.Gas)
	return nil
}

func decodeHex(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	if len(s) >= 2 && s[0:2] == "0x" {
		s = s[2:]
	}
	return hex.DecodeString(s)
}
