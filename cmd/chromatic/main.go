package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/chromatic"
	"github.com/jsvensson/chromatic/internal/format"
	"github.com/jsvensson/chromatic/internal/palette"
	"github.com/jsvensson/chromatic/internal/render"
	"github.com/spf13/cobra"
)

var (
	flagMode      string
	flagAlphaMode string
	flagPalette   string
	flagOut       string
	flagTemplates string
	flagOnly      []string
	flagCheck     bool
	version       = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "chromatic",
	Short:   "Convert, blend and organize colors across RGB, HSV, HSL, XYZ, Yxy, Lab and Luv",
	Version: version,
}

var convertCmd = &cobra.Command{
	Use:   "convert <hex>",
	Short: "Print a color in every supported color model",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var blendCmd = &cobra.Command{
	Use:   "blend <base> <top>",
	Short: "Blend two colors and print the result",
	Args:  cobra.ExactArgs(2),
	RunE:  runBlend,
}

var complementCmd = &cobra.Command{
	Use:   "complement <hex>",
	Short: "Print the complementary color",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplement,
}

var paletteCmd = &cobra.Command{
	Use:   "palette <file>",
	Short: "Load a palette file and list its resolved entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runPalette,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render templates against a palette file",
	RunE:  runRender,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format .palette files",
	Long:  "Format one or more .palette files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	blendCmd.Flags().StringVar(&flagMode, "mode", "lighter", "blend mode for the color channels")
	blendCmd.Flags().StringVar(&flagAlphaMode, "alpha-mode", "max", "blend mode for the alpha channel")
	renderCmd.Flags().StringVar(&flagPalette, "palette", "theme.palette", "path to palette file")
	renderCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	renderCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	renderCmd.Flags().StringArrayVar(&flagOnly, "only", nil, "render only specific templates (can be repeated)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(blendCmd)
	rootCmd.AddCommand(complementCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := chromatic.ParseHex(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r, g, b, a := c.RGB()
	h, s, v, _ := c.HSV()
	hh, hs, hl, _ := c.HSL()
	x, y, z, _ := c.XYZ()
	yy, yx, yyy, _ := c.Yxy()
	ll, la, lb, _ := c.Lab()
	ul, uu, uv, _ := c.Luv()

	fmt.Fprintf(out, "hex  %s\n", c.Hex())
	fmt.Fprintf(out, "rgb  %.4f %.4f %.4f  alpha %.4f\n", r, g, b, a)
	fmt.Fprintf(out, "hsv  %.2f %.4f %.4f\n", h, s, v)
	fmt.Fprintf(out, "hsl  %.2f %.4f %.4f\n", hh, hs, hl)
	fmt.Fprintf(out, "xyz  %.4f %.4f %.4f\n", x, y, z)
	fmt.Fprintf(out, "yxy  %.4f %.4f %.4f\n", yy, yx, yyy)
	fmt.Fprintf(out, "lab  %.4f %.4f %.4f\n", ll, la, lb)
	fmt.Fprintf(out, "luv  %.4f %.4f %.4f\n", ul, uu, uv)
	return nil
}

func runBlend(cmd *cobra.Command, args []string) error {
	base, err := chromatic.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("base color: %w", err)
	}
	top, err := chromatic.ParseHex(args[1])
	if err != nil {
		return fmt.Errorf("top color: %w", err)
	}

	mode, ok := chromatic.BlendMode(flagMode)
	if !ok {
		return fmt.Errorf("unknown blend mode %q (valid: %v)", flagMode, chromatic.BlendModeNames())
	}
	alphaMode, ok := chromatic.AlphaMode(flagAlphaMode)
	if !ok {
		return fmt.Errorf("unknown alpha mode %q (valid: %v)", flagAlphaMode, chromatic.AlphaModeNames())
	}

	fmt.Fprintln(cmd.OutOrStdout(), base.Blend(top, mode, alphaMode).Clip().Hex())
	return nil
}

func runComplement(cmd *cobra.Command, args []string) error {
	c, err := chromatic.ParseHex(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), c.Complementary().Clip().Hex())
	return nil
}

func runPalette(cmd *cobra.Command, args []string) error {
	p, err := palette.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	out := cmd.OutOrStdout()
	if p.Meta.Name != "" {
		fmt.Fprintf(out, "# %s\n", p.Meta.Name)
	}
	for _, name := range p.Names() {
		c, _ := p.Color(name)
		fmt.Fprintf(out, "%-20s %s\n", name, c.Hex())
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	p, err := palette.Load(flagPalette)
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	r := &render.Renderer{
		TemplatesDir: flagTemplates,
		OutputDir:    flagOut,
		Only:         flagOnly,
	}

	if err := r.Run(p); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered palette files in %s\n", flagOut)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted := format.Format(content)
		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
