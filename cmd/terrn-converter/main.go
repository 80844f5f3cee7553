// Copyright CuriousMike56, 2026. All rights reserved.

// Package main is the entry point for the terrn-converter CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the terrn-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "terrn-converter",
	Short: "Convert legacy terrains to the terrn2 format",
	Long: `terrn-converter upgrades terrains from the legacy pre-0.4 format to the
current one. It reads a .terrn file and its Ogre geometry .cfg, and writes
the .terrn2 descriptor, the .tobj object list, the .otc geometry config and
its page file next to the source.

Page textures are composited with ImageMagick when it is installed, and
with a built-in compositor otherwise.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./terrn-converter.yaml or ~/.config/terrn-converter/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("terrn-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "terrn-converter"))
		}
	}

	viper.SetDefault("category_id", 129)
	viper.SetDefault("sandstorm_cubemap", "tracks/skyboxcol")
	viper.SetDefault("report", true)
	viper.SetDefault("magick_binary", "")
	viper.SetDefault("texture.specular_level", 102)
	viper.SetDefault("texture.detail_world_size", 12)

	viper.SetEnvPrefix("TERRN_CONVERTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
