package diagnose

import (
	"github.com/gogpu/gpuvalidate/command"
	"github.com/gogpu/gpuvalidate/validate"
)

func seq(cmds ...command.Command) []command.Command {
	for i := range cmds {
		cmds[i].Index = uint32(i)
	}
	return cmds
}

func cmd(op command.Opcode, params command.Params) command.Command {
	return command.Command{Opcode: op, Params: params}
}

func validated(cmds ...command.Command) *validate.Validator {
	v := validate.New()
	v.Validate(seq(cmds...))
	return v
}
