package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-vault vault file path
//	-key key file path
//	-length default generated password length
//	-clipboard-ttl clipboard auto-clear delay (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

// parseFlags registers the config flags on fs and parses args. Split out
// from [ParseFlags] so tests can supply their own FlagSet instead of the
// process-global one.
func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var vaultPath string
	var keyPath string
	var length int
	var clipboardTTL time.Duration
	var jsonConfigPath string

	fs.StringVar(&vaultPath, "vault", "", "Vault file path")
	fs.StringVar(&keyPath, "key", "", "Key file path")
	fs.IntVar(&length, "length", 0, "Default generated password length")
	fs.DurationVar(&clipboardTTL, "clipboard-ttl", 0, "Clipboard auto-clear delay (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{},
		Storage: Storage{
			Vault: Vault{Path: vaultPath},
			Key:   Key{Path: keyPath},
		},
		Generator: Generator{
			Length: length,
		},
		Workers: Workers{
			ClipboardTTL: clipboardTTL,
		},
		JSONFilePath: jsonConfigPath,
	}
}
