package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/getidex/idex/config"
	"github.com/getidex/idex/internal"
)

var (
	log *logrus.Logger

	cfgFile     string
	showVersion bool
	dumpConfig  bool
)

var cmd = &cobra.Command{
	Use:   "idex",
	Short: "idex extracts structured identity records from document scans and transcribes Sinhala audio",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

var dumpJsonSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for idex's configuration file",
	Example: "idex json-schema > idex_config_schema.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(schema))
		return nil
	},
}

func init() {
	cmd.AddCommand(dumpJsonSchemaCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump the effective config")
}

// Execute executes the root cobra command.
func Execute() {
	log = internal.GetLogger()
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
