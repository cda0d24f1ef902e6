package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	bip39 "github.com/cosmos/go-bip39"
	"github.com/openweb3-io/keplr-go/blockchain/cosmos/address"
	"github.com/openweb3-io/keplr-go/cmd/climb/setup"
	"github.com/openweb3-io/keplr-go/keplr"
	"github.com/openweb3-io/keplr-go/signer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func printJSON(v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(bz))
	return nil
}

func CmdChains() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List the configured chains.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())
			return printJSON(cfg.Chains)
		},
	}
}

func CmdKeplrConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keplr-config",
		Aliases: []string{"chain-info"},
		Short:   "Print the chain info that would be suggested to Keplr.",
		Args:    cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := setup.LoadChain(cmd)
			if err != nil {
				return err
			}
			info, err := keplr.NewChainInfo(chain)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "json":
				return printJSON(info)
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(info)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().String("format", "json", "Output format, json or yaml")
	return cmd
}

func CmdAddress() *cobra.Command {
	return &cobra.Command{
		Use:   "address <public-key>",
		Short: "Derive the chain address of a compressed secp256k1 public key (hex or base64).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := setup.LoadChain(cmd)
			if err != nil {
				return err
			}
			pubKey, err := hex.DecodeString(args[0])
			if err != nil {
				pubKey, err = base64.StdEncoding.DecodeString(args[0])
				if err != nil {
					return fmt.Errorf("public key is neither hex nor base64")
				}
			}

			builder, err := address.NewAddressBuilder(chain)
			if err != nil {
				return err
			}
			addr, err := builder.GetAddressFromPublicKey(pubKey)
			if err != nil {
				return err
			}
			fmt.Println(addr)
			return nil
		},
	}
}

func CmdFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fee",
		Short: "Compute the fee for a gas limit at the chain's gas price.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := setup.LoadChain(cmd)
			if err != nil {
				return err
			}
			gas, _ := cmd.Flags().GetUint64("gas")
			fee, err := chain.Fee(gas)
			if err != nil {
				return err
			}
			fmt.Println(fee.Amount + fee.Denom)
			return nil
		},
	}
	cmd.Flags().Uint64("gas", 200_000, "Gas limit")
	return cmd
}

func CmdKeys() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage signer keys.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Generate a new 24 word mnemonic.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			entropy, err := bip39.NewEntropy(256)
			if err != nil {
				return err
			}
			mnemonic, err := bip39.NewMnemonic(entropy)
			if err != nil {
				return err
			}
			fmt.Println(mnemonic)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the public key and address of the configured signer.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())
			chain, err := setup.LoadChain(cmd)
			if err != nil {
				return err
			}
			s, err := setup.LoadSigner(cmd.Context(), cfg, chain)
			if err != nil {
				return err
			}
			pubKey, err := s.PublicKey(cmd.Context())
			if err != nil {
				return err
			}
			addr, err := signer.Address(cmd.Context(), s, chain)
			if err != nil {
				return err
			}
			return printJSON(map[string]string{
				"chain_id":   chain.ChainID.String(),
				"public_key": hex.EncodeToString(pubKey.Bytes()),
				"address":    addr.String(),
			})
		},
	})
	return cmd
}

func CmdSign() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a direct mode SignDoc and print the base64 signature.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())
			chain, err := setup.LoadChain(cmd)
			if err != nil {
				return err
			}

			bodyHex, _ := cmd.Flags().GetString("body")
			authInfoHex, _ := cmd.Flags().GetString("auth-info")
			accountNumber, _ := cmd.Flags().GetUint64("account-number")
			body, err := hex.DecodeString(bodyHex)
			if err != nil {
				return fmt.Errorf("invalid --body: %v", err)
			}
			authInfo, err := hex.DecodeString(authInfoHex)
			if err != nil {
				return fmt.Errorf("invalid --auth-info: %v", err)
			}

			s, err := setup.LoadSigner(cmd.Context(), cfg, chain)
			if err != nil {
				return err
			}
			sig, err := s.Sign(cmd.Context(), &txtypes.SignDoc{
				BodyBytes:     body,
				AuthInfoBytes: authInfo,
				ChainId:       chain.ChainID.String(),
				AccountNumber: accountNumber,
			})
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"chain":  chain.ChainID,
				"signer": cfg.Signer.Kind,
			}).Info("signed")
			fmt.Println(base64.StdEncoding.EncodeToString(sig))
			return nil
		},
	}
	cmd.Flags().String("body", "", "Hex encoded TxBody bytes")
	cmd.Flags().String("auth-info", "", "Hex encoded AuthInfo bytes")
	cmd.Flags().Uint64("account-number", 0, "Account number")
	return cmd
}
