package main

import (
	"context"
	"os"

	"github.com/openweb3-io/keplr-go/cmd/climb/setup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:          "climb",
		Short:        "Inspect chain configs and signers used with the Keplr wallet",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args := setup.ArgsFromCmd(cmd)
			cfg, err := setup.LoadConfig(args)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"config": args.ConfigPath,
				"chains": len(cfg.Chains),
				"signer": cfg.Signer.Kind,
			}).Debug("config")

			cmd.SetContext(setup.WrapConfig(context.Background(), cfg))
			return nil
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(CmdChains())
	cmd.AddCommand(CmdKeplrConfig())
	cmd.AddCommand(CmdAddress())
	cmd.AddCommand(CmdFee())
	cmd.AddCommand(CmdKeys())
	cmd.AddCommand(CmdSign())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
