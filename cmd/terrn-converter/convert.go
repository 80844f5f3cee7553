// Copyright CuriousMike56, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CuriousMike56/terrn-converter/internal/convert"
	"github.com/CuriousMike56/terrn-converter/internal/magick"
	"github.com/CuriousMike56/terrn-converter/internal/texture"
	"github.com/CuriousMike56/terrn-converter/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [terrain.terrn]",
	Short: "Convert a legacy .terrn terrain to .terrn2",
	Long: `Convert reads a legacy .terrn file and writes the new-format files next
to it: the .terrn2 descriptor, the .tobj object list, and, when the Ogre
geometry .cfg is readable, the .otc geometry config with its page file and
composited page textures.

One terrain is converted per invocation. A .conversion.yaml report records
what was written and what needs manual follow-up.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfigFromFlags(cmd)

	var comp texture.Compositor
	if !cfg.SkipTextures {
		comp = pickCompositor(cfg.Texture.MagickBinary)
	}

	opts := convert.Options{
		Source:      args[0],
		Config:      cfg,
		ToolVersion: version,
	}
	result, err := convert.Convert(opts, comp, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasWarnings() {
		fmt.Fprintf(os.Stderr, "%d warning(s); see the conversion report\n", len(result.Warnings))
	}
	return nil
}

// pickCompositor prefers an explicitly configured ImageMagick binary,
// then a detected installation, then the built-in compositor.
func pickCompositor(binOverride string) texture.Compositor {
	if binOverride != "" {
		tool := magick.ToolAt(binOverride)
		if tool.Available() {
			return texture.NewMagickCompositor(tool)
		}
		fmt.Fprintf(os.Stderr, "configured ImageMagick %s not operational; using built-in compositor\n", binOverride)
		return texture.NewGoCompositor()
	}

	tool, err := magick.DetectTool()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v; using built-in compositor\n", err)
		return texture.NewGoCompositor()
	}
	return texture.NewMagickCompositor(tool)
}

func convertConfigFromFlags(cmd *cobra.Command) types.ConvertConfig {
	name, _ := cmd.Flags().GetString("name")
	guid, _ := cmd.Flags().GetString("guid")
	force, _ := cmd.Flags().GetBool("force")
	skipTextures, _ := cmd.Flags().GetBool("skip-textures")

	categoryID, _ := cmd.Flags().GetInt("category-id")
	if !cmd.Flags().Changed("category-id") {
		categoryID = viper.GetInt("category_id")
	}

	noReport, _ := cmd.Flags().GetBool("no-report")
	report := !noReport
	if report {
		report = viper.GetBool("report")
	}

	return types.ConvertConfig{
		NameOverride:     name,
		GUID:             guid,
		CategoryID:       categoryID,
		SandStormCubeMap: viper.GetString("sandstorm_cubemap"),
		Force:            force,
		SkipTextures:     skipTextures,
		Report:           report,
		Texture: types.TextureConfig{
			SpecularLevel:   viper.GetInt("texture.specular_level"),
			DetailWorldSize: viper.GetInt("texture.detail_world_size"),
			MagickBinary:    viper.GetString("magick_binary"),
		},
	}
}

func init() {
	convertCmd.Flags().String("name", "", "override the terrain display name")
	convertCmd.Flags().String("guid", "", "fix the output GUID instead of generating one")
	convertCmd.Flags().Int("category-id", 0, "mod repository category (default 129)")
	convertCmd.Flags().Bool("force", false, "overwrite existing output files")
	convertCmd.Flags().Bool("skip-textures", false, "write the page file but leave its textures to be created by hand")
	convertCmd.Flags().Bool("no-report", false, "do not write the .conversion.yaml report")

	rootCmd.AddCommand(convertCmd)
}
