package cmd

import (
	"chyp8vm/chyp"
	"chyp8vm/emu/cpu"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var dumpCmd = &cobra.Command{
	Use:   "dump `path/ROM`",
	Short: "print the memory of a machine after loading a ROM",
	Args:  cobra.ExactArgs(1),
	RunE:  Dump,
}

// chyp8 dump 'path/to/ROM'
func Dump(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(viper.GetViper())
	if err != nil {
		return err
	}

	emu := cpu.NewEMU(newLogger(opts), opts.machineConfig())
	if _, err := chyp.LoadGame(emu, args[0]); err != nil {
		return err
	}
	return chyp.Dump(cmd.OutOrStdout(), emu.Memory(), cpu.ProgramStart, emu.Disassemble)
}
