package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdva/bigdecimal"
	"github.com/avdva/bigdecimal/internal/config"
	"github.com/avdva/bigdecimal/internal/logutil"
	"github.com/avdva/bigdecimal/interop"
)

type binaryOp func(a, b bigdecimal.Decimal) (bigdecimal.Decimal, error)

func exact(op func(a, b bigdecimal.Decimal) bigdecimal.Decimal) binaryOp {
	return func(a, b bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return op(a, b), nil
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "bigdec",
		Short:        "arbitrary-precision decimal calculator",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", config.Default().Log.Level, "log level: debug, info, warn, error")
	_ = a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		binaryCmd("add", "a + b", exact(bigdecimal.Decimal.Add)),
		binaryCmd("sub", "a - b", exact(bigdecimal.Decimal.Sub)),
		binaryCmd("mul", "a * b", exact(bigdecimal.Decimal.Mul)),
		binaryCmd("div", "a / b with at most 10 extra digits", bigdecimal.Decimal.Div),
		binaryCmd("divint", "integer part of a / b", bigdecimal.Decimal.DivToIntegralValue),
		binaryCmd("rem", "a - b * divint(a, b), has the sign of a", bigdecimal.Decimal.Rem),
		powCmd(),
		sqrtCmd(),
		a.roundCmd(),
		partsCmd(),
		cmpCmd(),
		convertCmd(),
	)
	return root
}

func binaryCmd(name, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " a b",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			logutil.Debug("computing", zap.String("op", name), zap.Strings("args", args))
			res, err := op(operands[0], operands[1])
			if err != nil {
				return failed(name, args, err)
			}
			return printLines(cmd, res)
		},
	}
}

func powCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow a n",
		Short: "a to the power of non-negative integer n",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args[:1])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrapf(err, "bad power %q", args[1])
			}
			logutil.Debug("computing", zap.String("op", "pow"), zap.Strings("args", args))
			res, err := operands[0].Pow(n)
			if err != nil {
				return failed("pow", args, err)
			}
			return printLines(cmd, res)
		},
	}
}

func sqrtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt a",
		Short: "approximate square root of a",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			logutil.Debug("computing", zap.String("op", "sqrt"), zap.Strings("args", args))
			res, err := operands[0].Sqrt()
			if err != nil {
				return failed("sqrt", args, err)
			}
			return printLines(cmd, res)
		},
	}
}

func (a *app) roundCmd() *cobra.Command {
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "round a",
		Short: "round a to the given number of digits after the decimal point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			modeName := a.v.GetString("round.mode")
			mode, err := bigdecimal.ParseRoundingMode(modeName)
			if err != nil {
				return errors.Wrap(err, "bad --mode")
			}
			prec := a.v.GetInt("round.precision")
			logutil.Debug("computing", zap.String("op", "round"), zap.Strings("args", args),
				zap.Stringer("mode", mode), zap.Int("precision", prec))
			return printLines(cmd, operands[0].Round(prec, mode))
		},
	}
	cmd.Flags().String("mode", def.Round.Mode, "rounding mode: "+strings.Join(modeNames(), ", "))
	cmd.Flags().Int("precision", def.Round.Precision, "digits after the decimal point, negative values round to the left of it")
	_ = a.v.BindPFlag("round.mode", cmd.Flags().Lookup("mode"))
	_ = a.v.BindPFlag("round.precision", cmd.Flags().Lookup("precision"))
	return cmd
}

func partsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parts a",
		Short: "print integral and decimal parts of a",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			return printLines(cmd, operands[0].IntegralPart(), operands[0].DecimalPart())
		},
	}
}

func cmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp a b",
		Short: "print -1 if a < b, 0 if a == b, 1 if a > b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), operands[0].Cmp(operands[1]))
			return err
		},
	}
}

func convertCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "convert a",
		Short: "convert a to another decimal type and back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			logutil.Debug("converting", zap.String("target", target), zap.Strings("args", args))
			res, err := interop.RoundTrip(operands[0], target)
			if err != nil {
				return failed("convert", args, err)
			}
			return printLines(cmd, res)
		},
	}
	cmd.Flags().StringVar(&target, "to", "shopspring", "target type: "+strings.Join(interop.Targets(), ", "))
	return cmd
}

func parseOperands(args []string) ([]bigdecimal.Decimal, error) {
	result := make([]bigdecimal.Decimal, 0, len(args))
	for _, arg := range args {
		d, err := bigdecimal.FromString(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "bad operand %q", arg)
		}
		result = append(result, d)
	}
	return result, nil
}

func failed(op string, args []string, err error) error {
	logutil.Error("operation failed", zap.String("op", op), zap.Strings("args", args), zap.Error(err))
	return errors.Wrapf(err, "%s %s", op, strings.Join(args, " "))
}

func printLines(cmd *cobra.Command, values ...bigdecimal.Decimal) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), v.String()); err != nil {
			return err
		}
	}
	return nil
}

func modeNames() []string {
	var result []string
	for m := bigdecimal.HalfEven; m <= bigdecimal.Floor; m++ {
		result = append(result, m.String())
	}
	return result
}
