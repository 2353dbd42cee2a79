package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/keyring"
)

type OwnerCmd struct {
	Set   OwnerSetCmd   `cmd:"" help:"Store the owner identity in the OS keyring."`
	Show  OwnerShowCmd  `cmd:"" help:"Show the owner identity in use."`
	Clear OwnerClearCmd `cmd:"" help:"Remove the owner identity from the OS keyring."`
}

type OwnerSetCmd struct {
	Owner string `arg:"" help:"Owner identity records are scoped to."`
}

func (cmd *OwnerSetCmd) Run(ctx *cli.Context) error {
	owner := strings.TrimSpace(cmd.Owner)
	if owner == "" {
		return errors.New("owner cannot be empty")
	}
	if err := keyring.SetOwner(owner); err != nil {
		return fmt.Errorf("failed to store owner in keyring: %w", err)
	}
	fmt.Printf("✓ Owner set to %q\n", owner)
	return nil
}

type OwnerShowCmd struct{}

func (cmd *OwnerShowCmd) Run(ctx *cli.Context) error {
	fmt.Println(ctx.Tracker.Owner())
	stored, err := keyring.GetOwner()
	switch {
	case err == nil && stored != ctx.Tracker.Owner():
		fmt.Printf("  (overriding %q stored in keyring)\n", stored)
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("  (no owner stored in keyring)")
	}
	return nil
}

type OwnerClearCmd struct{}

func (cmd *OwnerClearCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteOwner(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no owner found in keyring")
		}
		return fmt.Errorf("failed to delete owner from keyring: %w", err)
	}
	fmt.Println("✓ Owner removed from OS keyring")
	return nil
}
