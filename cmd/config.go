package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/kipdayo/kipdayo/color"
	"github.com/kipdayo/kipdayo/config"
	"github.com/kipdayo/kipdayo/constant"
	"github.com/kipdayo/kipdayo/filesystem"
	"github.com/kipdayo/kipdayo/icon"
	"github.com/kipdayo/kipdayo/style"
	"github.com/kipdayo/kipdayo/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configPath() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// closestKey returns the registered key nearest to k by edit distance.
func closestKey(k string) string {
	return lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		da, db := levenshtein.Distance(k, a), levenshtein.Distance(k, b)
		if da != db {
			return da < db
		}
		return a < b
	})
}

func errUnknownKey(k string) error {
	return fmt.Errorf("unknown key %s, did you mean %s?",
		style.Fg(color.Red)(k),
		style.Fg(color.Yellow)(closestKey(k)),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// parseValue converts raw to the type of the key's default value.
func parseValue(k, raw string) (any, error) {
	switch config.Default[k].Value.(type) {
	case int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw)
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

// writeConfig persists the in-memory settings, creating the file if needed.
func writeConfig() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Keys to describe")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe settings with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = lo.Values(config.Default)
			out    = cmd.OutOrStdout()
		)

		if len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))
			for _, k := range keys {
				field, ok := config.Default[k]
				if !ok {
					handleErr(errUnknownKey(k))
				}
				fields = append(fields, field)
			}
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if asJson {
			handleErr(json.NewEncoder(out).Encode(lo.ToSlicePtr(fields)))
			return
		}

		for i, field := range fields {
			_, _ = fmt.Fprint(out, field.Pretty())
			if i < len(fields)-1 {
				_, _ = fmt.Fprint(out, "\n\n")
			}
		}
		_, _ = fmt.Fprintln(out)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k := args[0]
		if _, ok := config.Default[k]; !ok {
			handleErr(errUnknownKey(k))
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), viper.Get(k))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Change a setting and save it",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k := args[0]
		if _, ok := config.Default[k]; !ok {
			handleErr(errUnknownKey(k))
		}

		v, err := parseValue(k, args[1])
		handleErr(err)

		prev := viper.Get(k)
		viper.Set(k, v)
		if err := config.Validate(); err != nil {
			viper.Set(k, prev)
			handleErr(err)
		}

		handleErr(writeConfig())

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(k),
			style.Fg(color.Yellow)(fmt.Sprint(v)),
		)
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringP("key", "k", "", "Key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore settings to their defaults",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			k   = lo.Must(cmd.Flags().GetString("key"))
			all = lo.Must(cmd.Flags().GetBool("all"))
			out = cmd.OutOrStdout()
		)

		if all {
			for name, field := range config.Default {
				viper.Set(name, field.Value)
			}
		} else if field, ok := config.Default[k]; ok {
			viper.Set(k, field.Value)
		} else {
			handleErr(errUnknownKey(k))
		}

		handleErr(writeConfig())

		if all {
			_, _ = fmt.Fprintf(out, "%s reset all settings\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		_, _ = fmt.Fprintf(out, "%s reset %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(k),
			style.Fg(color.Yellow)(fmt.Sprint(config.Default[k].Value)),
		)
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current settings to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath()

		if lo.Must(cmd.Flags().GetBool("force")) {
			_, err := filesystem.Remove(path)
			handleErr(err)
		}

		handleErr(viper.SafeWriteConfig())
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s wrote config to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Delete the config file",
	Run: func(cmd *cobra.Command, args []string) {
		removed, err := filesystem.Remove(configPath())
		handleErr(err)

		if !removed {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s no config file\n", icon.Get(icon.Question))
			return
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s deleted config\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
