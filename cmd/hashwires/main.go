// Command hashwires drives Secret/Commitment/Proof generation and
// verification from the shell, for manual testing and interop
// checking against other implementations.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/novifinancial/hashwires"
)

func main() {
	app := cli.NewApp()
	app.Name = "hashwires"
	app.Usage = "generate and verify hash-based range-proof credentials"
	app.Commands = []cli.Command{
		genCommand,
		commitCommand,
		proveCommand,
		verifyCommand,
		storeCommand,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "hashwires:", err)
		os.Exit(1)
	}
}

var commonFlags = []cli.Flag{
	cli.StringFlag{Name: "seed", Usage: "64 hex chars, the 32-byte master seed"},
	cli.Uint64Flag{Name: "value", Usage: "the committed value v"},
	cli.UintFlag{Name: "base", Value: 16, Usage: "numeral base: 2, 4, 16 or 256"},
	cli.UintFlag{Name: "bits", Value: 32, Usage: "max bit width n"},
}

var genCommand = cli.Command{
	Name:  "gen",
	Usage: "print a random 32-byte hex seed",
	Action: func(c *cli.Context) error {
		seed, err := hashwires.RandomSeed()
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(seed))
		return nil
	},
}

var commitCommand = cli.Command{
	Name:  "commit",
	Usage: "print the hex-encoded commitment for a seed and value",
	Flags: commonFlags,
	Action: func(c *cli.Context) error {
		secret, ctx, err := secretAndContextFromFlags(c)
		if err != nil {
			return err
		}
		commitment, cerr := secret.Commit(ctx)
		if cerr != nil {
			return cerr
		}
		bytes, merr := commitment.MarshalBinary()
		if merr != nil {
			return merr
		}
		fmt.Println(hex.EncodeToString(bytes))
		return nil
	},
}

var proveCommand = cli.Command{
	Name:  "prove",
	Usage: "print a hex-encoded proof that v >= threshold",
	Flags: append(commonFlags, cli.Uint64Flag{Name: "threshold", Required: true}),
	Action: func(c *cli.Context) error {
		secret, ctx, err := secretAndContextFromFlags(c)
		if err != nil {
			return err
		}
		threshold := hashwires.BigNumFromUint64(c.Uint64("threshold"))
		proof, perr := secret.Prove(ctx, threshold)
		if perr != nil {
			return perr
		}
		bytes, merr := proof.MarshalBinary(ctx.L)
		if merr != nil {
			return merr
		}
		fmt.Println(hex.EncodeToString(bytes))
		return nil
	},
}

var verifyCommand = cli.Command{
	Name:  "verify",
	Usage: "verify a hex-encoded commitment and proof against a threshold",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "commitment", Required: true},
		cli.StringFlag{Name: "proof", Required: true},
		cli.Uint64Flag{Name: "threshold", Required: true},
		cli.UintFlag{Name: "hash-len", Value: 32},
	},
	Action: func(c *cli.Context) error {
		l := uint32(c.Uint("hash-len"))
		commitmentBytes, err := hex.DecodeString(c.String("commitment"))
		if err != nil {
			return err
		}
		commitment, cerr := hashwires.UnmarshalCommitment(commitmentBytes, l)
		if cerr != nil {
			return cerr
		}
		ctx, xerr := hashwires.NewContext(hashwires.SHA2, l, commitment.Params())
		if xerr != nil {
			return xerr
		}
		proofBytes, err := hex.DecodeString(c.String("proof"))
		if err != nil {
			return err
		}
		proof, perr := hashwires.UnmarshalProof(proofBytes, ctx.K(), l)
		if perr != nil {
			return perr
		}
		threshold := hashwires.BigNumFromUint64(c.Uint64("threshold"))
		if verr := commitment.Verify(ctx, proof, threshold); verr != nil {
			return verr
		}
		fmt.Println("ok")
		return nil
	},
}

// storeCommand groups the on-disk SecretStore operations: an issuer
// keeping a Secret across process restarts writes it once with
// "store create" and later re-derives commitments from "store commit"
// without re-entering the seed by hand each time.
var storeCommand = cli.Command{
	Name:  "store",
	Usage: "create or read a file-backed SecretStore",
	Subcommands: []cli.Command{
		{
			Name:  "create",
			Usage: "write a new SecretStore at --path from --seed/--value/--base/--bits",
			Flags: append(commonFlags, cli.StringFlag{Name: "path", Required: true}),
			Action: func(c *cli.Context) error {
				secret, ctx, err := secretAndContextFromFlags(c)
				if err != nil {
					return err
				}
				store, serr := hashwires.CreateSecretStore(c.String("path"), secret, ctx.Params())
				if serr != nil {
					return serr
				}
				return store.Close()
			},
		},
		{
			Name:  "commit",
			Usage: "print the hex-encoded commitment for a SecretStore at --path",
			Flags: []cli.Flag{cli.StringFlag{Name: "path", Required: true}},
			Action: func(c *cli.Context) error {
				store, oerr := hashwires.OpenSecretStore(c.String("path"))
				if oerr != nil {
					return oerr
				}
				defer store.Close()

				secret, params, serr := store.Secret()
				if serr != nil {
					return serr
				}
				ctx, cerr := hashwires.NewContext(hashwires.SHA2, 32, params)
				if cerr != nil {
					return cerr
				}
				commitment, merr := secret.Commit(ctx)
				if merr != nil {
					return merr
				}
				bytes, berr := commitment.MarshalBinary()
				if berr != nil {
					return berr
				}
				fmt.Println(hex.EncodeToString(bytes))
				return nil
			},
		},
	},
}

func secretAndContextFromFlags(c *cli.Context) (*hashwires.Secret, *hashwires.Context, error) {
	seedHex := c.String("seed")
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --seed: %w", err)
	}
	secret, serr := hashwires.Gen(seed, hashwires.BigNumFromUint64(c.Uint64("value")))
	if serr != nil {
		return nil, nil, serr
	}
	params := hashwires.Params{
		Base:    uint16(c.Uint("base")),
		MaxBits: uint16(c.Uint("bits")),
	}
	ctx, cerr := hashwires.NewContext(hashwires.SHA2, 32, params)
	if cerr != nil {
		return nil, nil, cerr
	}
	return secret, ctx, nil
}
