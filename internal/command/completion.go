// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fieldmask/internal/meta"
)

const bashCompletionScript = `# bash completion for fieldmask
_fieldmask()
{
    local cur prev cmd opts
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "apply parse check completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local input="--input-format --root --lines --profile --region"
    local render="--output -o --color --pretty -p"

    case "$prev" in
    --input-format)
        COMPREPLY=( $(compgen -W "auto json yaml" -- "$cur") )
        return 0
        ;;
    --color)
        COMPREPLY=( $(compgen -W "auto always never" -- "$cur") )
        return 0
        ;;
    esac

    case "$cmd" in
    apply|a)
        opts="--filter -f --require -r --diff --stats $input $render"
        ;;
    parse|p)
        opts="--filter -f --titles $render"
        ;;
    check|c)
        opts="--require -r $input"
        ;;
    completion)
        COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
        return 0
        ;;
    esac

    if [[ $cur == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    else
        COMPREPLY=( $(compgen -f -- "$cur") )
    fi
}
complete -F _fieldmask fieldmask
`

const zshCompletionScript = `#compdef fieldmask

_fieldmask() {
  local -a input render
  input=(
    '--input-format[input format]:format:(auto json yaml)'
    '--root[gjson path of the sub-document]:path'
    '--lines[newline-delimited JSON input]'
    '--profile[AWS profile]:profile'
    '--region[AWS region]:region'
  )
  render=(
    '(-o --output)'{-o,--output}'[output format]:format'
    '--color[colorize output]:mode:(auto always never)'
    '(-p --pretty)'{-p,--pretty}'[indent JSON output]'
  )

  _arguments -C '1:command:(apply parse check completion)' '*::arg:->args'

  case $words[1] in
    apply|a)
      _arguments \
        '(-f --filter)'{-f,--filter}'[fields to keep]:filter' \
        '(-r --require)'{-r,--require}'[required fields]:require' \
        '--diff[show what the mask removed]' \
        '--stats[write sizes to stderr]' \
        $input $render \
        '::input:_files'
      ;;
    parse|p)
      _arguments \
        '(-f --filter)'{-f,--filter}'[filter to parse]:filter' \
        '--titles[show column titles]' \
        $render \
        '::filter'
      ;;
    check|c)
      _arguments \
        '(-r --require)'{-r,--require}'[required fields]:require' \
        $input \
        '::input:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _fieldmask fieldmask
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL.
		switch sh := os.Getenv("SHELL"); {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(m.Out, bashCompletionScript)
	case "zsh":
		fmt.Fprint(m.Out, zshCompletionScript)
	default:
		return fmt.Errorf("usage: fieldmask completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "fieldmask completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": m,
		},
		Action: completionCommandAction,
	}
}
