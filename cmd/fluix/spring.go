package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/fluix/pkg/spring"
)

var springCmd = &cobra.Command{
	Use:   "spring",
	Short: "Encode a spring as a CSS easing or keyframes",
	Long: `Simulates a damped spring and prints it as a CSS linear() easing function,
or as explicit keyframes when --keyframes is given.

Without spring flags the toaster preset is used; unset flags in a custom
spring take the physics defaults (stiffness 100, damping 10, mass 1).`,
	Example: `  fluix spring
  fluix spring --stiffness 300 --damping 20 --format json
  fluix spring --keyframes 0,100 --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		frames, _ := cmd.Flags().GetFloat64Slice("keyframes")
		if len(frames) != 0 && len(frames) != 2 {
			return fmt.Errorf("--keyframes takes exactly two values, got %d", len(frames))
		}

		cfg, err := springFromFlags(cmd)
		if err != nil {
			return err
		}

		var out any
		if len(frames) == 2 {
			out = spring.Keyframes(frames[0], frames[1], cfg)
		} else {
			out = spring.ToCSS(cfg)
		}
		return printSpring(cmd.OutOrStdout(), format, out)
	},
}

func init() {
	rootCmd.AddCommand(springCmd)

	springCmd.Flags().Float64("stiffness", 0, "Spring stiffness")
	springCmd.Flags().Float64("damping", 0, "Damping coefficient")
	springCmd.Flags().Float64("mass", 0, "Mass of the animated object")
	springCmd.Flags().Float64Slice("keyframes", nil, "Print keyframes animating from,to instead of an easing")
	springCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
}

func springFromFlags(cmd *cobra.Command) (spring.Config, error) {
	flags := cmd.Flags()
	if !flags.Changed("stiffness") && !flags.Changed("damping") && !flags.Changed("mass") {
		return spring.Fluix, nil
	}
	var cfg spring.Config
	cfg.Stiffness, _ = flags.GetFloat64("stiffness")
	cfg.Damping, _ = flags.GetFloat64("damping")
	cfg.Mass, _ = flags.GetFloat64("mass")
	if cfg.Stiffness < 0 || cfg.Damping < 0 || cfg.Mass < 0 {
		return spring.Config{}, fmt.Errorf("spring parameters must not be negative")
	}
	return cfg, nil
}

func printSpring(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	case "text":
		switch out := v.(type) {
		case *spring.CSS:
			fmt.Fprintf(w, "transition-duration: %dms;\n", out.DurationMs)
			fmt.Fprintf(w, "transition-timing-function: %s;\n", out.Easing)
		case spring.KeyframeSet:
			fmt.Fprintf(w, "duration: %dms\n", out.DurationMs)
			for _, f := range out.Frames {
				fmt.Fprintf(w, "%6.2f%%  %.3f\n", f.Offset*100, f.Value)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (text, json, yaml)", format)
	}
}
