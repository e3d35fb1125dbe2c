package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/WADEPAR6/swartzkrip/cmd/internal"
	"github.com/WADEPAR6/swartzkrip/internal/app"
	"github.com/WADEPAR6/swartzkrip/internal/config"
	"github.com/WADEPAR6/swartzkrip/pkg/encryption"
	"github.com/WADEPAR6/swartzkrip/pkg/identity"
	"github.com/WADEPAR6/swartzkrip/pkg/vigenere"
	flag "github.com/spf13/pflag"
)

const (
	exitOK      = 0
	exitFailure = 1

	defaultKeyLen = 24
)

var errUsage = errors.New("usage")

type command struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	args   []string
}

func run(cfg *config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		helpFlag    bool
		versionFlag bool
		keyFlag     string
		engineFlag  string
	)
	flags := flag.NewFlagSet("swartzkrip", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&versionFlag, "version", "v", false, "Prints the version.")
	flags.StringVarP(&keyFlag, "key", "k", "", "Overrides the CRYPTO_KEY used to encode and decode.")
	flags.StringVarP(&engineFlag, "engine", "e", "", "Overrides CRYPTO_ENGINE, either 'vigenere' or 'passlock'.")
	flags.Usage = func() {
		internal.Echo(stderr, `
swartzkrip obscures text payloads for transport, and validates Ecuadorian national ID numbers (cédulas).

USAGE:  swartzkrip [FLAGS] COMMAND [ARG]

If ARG is omitted, it's read from stdin.

COMMANDS:
    encode TEXT          Encodes TEXT with the configured engine.
    decode TEXT          Decodes TEXT, exiting with 1 if it can't be decoded.
    encode-json JSON     Checks that JSON is valid, then encodes it.
    decode-json TEXT     Decodes TEXT and pretty prints the JSON it contains.
    validate CEDULA      Validates a cédula, exiting with 1 if it's invalid.
    format CEDULA        Formats a cédula as XXX-XXXXXXX.
    keygen [LENGTH]      Generates a random printable key (default length %d).

FLAGS:
%s
SECURITY:
    The default 'vigenere' engine is obfuscation, NOT encryption.
It's an additive stream cipher with a static key, and is trivially broken by known-plaintext or frequency analysis.
Use the 'passlock' engine when payloads need confidentiality.
`, defaultKeyLen, flags.FlagUsages())
	}

	if err := flags.Parse(args); err != nil {
		internal.Echo(stderr, "Error parsing flags: %v", err)
		return exitFailure
	}
	if versionFlag {
		internal.Echo(stdout, "%s", version)
		return exitOK
	}
	if helpFlag || flags.NArg() == 0 {
		flags.Usage()
		if helpFlag {
			return exitOK
		}
		return exitFailure
	}

	effective := *cfg
	if flags.Changed("key") {
		effective.CryptoKey = keyFlag
	}
	if flags.Changed("engine") {
		effective.CryptoEngine = strings.ToLower(engineFlag)
	}
	cmd := &command{
		cfg:    &effective,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		args:   flags.Args()[1:],
	}

	var err error
	switch name := flags.Arg(0); name {
	case "encode":
		err = cmd.encode(false)
	case "encode-json":
		err = cmd.encode(true)
	case "decode":
		err = cmd.decode(false)
	case "decode-json":
		err = cmd.decode(true)
	case "validate":
		err = cmd.validate()
	case "format":
		err = cmd.format()
	case "keygen":
		err = cmd.keygen()
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	if err != nil {
		internal.Echo(stderr, "Error: %v", err)
		if errors.Is(err, errUsage) {
			flags.Usage()
		}
		return exitFailure
	}
	return exitOK
}

// input returns the first positional argument, or all of stdin with the trailing newline removed.
func (c *command) input() (string, error) {
	if len(c.args) > 0 {
		return c.args[0], nil
	}
	data, err := io.ReadAll(c.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func (c *command) service() (*encryption.Service, error) {
	container := app.NewContainer(c.cfg, c.stderr)
	return container.EncryptionService()
}

func (c *command) encode(asJSON bool) error {
	text, err := c.input()
	if err != nil {
		return err
	}
	if asJSON && !json.Valid([]byte(text)) {
		return errors.New("input is not valid JSON")
	}
	svc, err := c.service()
	if err != nil {
		return err
	}
	if text != "" {
		text = svc.Encrypt(text)
		if text == "" {
			return errors.New("failed to encode input")
		}
	}
	internal.Echo(c.stdout, "%s", text)
	return nil
}

func (c *command) decode(asJSON bool) error {
	text, err := c.input()
	if err != nil {
		return err
	}
	svc, err := c.service()
	if err != nil {
		return err
	}
	if !asJSON {
		plain := svc.Decrypt(text)
		if plain == "" && text != "" {
			return errors.New("decryption failed")
		}
		internal.Echo(c.stdout, "%s", plain)
		return nil
	}

	doc, ok := encryption.DecryptJSON[json.RawMessage](svc, text)
	if !ok {
		return errors.New("decryption failed")
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, doc, "", "  "); err != nil {
		return err
	}
	internal.Echo(c.stdout, "%s", pretty.String())
	return nil
}

func (c *command) validate() error {
	raw, err := c.input()
	if err != nil {
		return err
	}
	res := identity.ValidateNationalID(raw)
	if !res.IsValid {
		return fmt.Errorf("invalid cédula: %s", res.Message)
	}
	internal.Echo(c.stdout, "valid: %s", identity.FormatNationalID(raw))
	return nil
}

func (c *command) format() error {
	raw, err := c.input()
	if err != nil {
		return err
	}
	internal.Echo(c.stdout, "%s", identity.FormatNationalID(raw))
	return nil
}

func (c *command) keygen() error {
	length := defaultKeyLen
	if len(c.args) > 0 {
		n, err := strconv.Atoi(c.args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: LENGTH must be a positive integer", errUsage)
		}
		length = n
	}
	key, err := vigenere.GenKey(length)
	if err != nil {
		return err
	}
	internal.Echo(c.stdout, "%s", key)
	return nil
}
