package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeFormat Type = "format"
	TypePin    Type = "pin"
	TypeUnpin  Type = "unpin"
	TypeRename Type = "rename"
	TypeDelete Type = "delete"
	TypeExport Type = "export"
	TypeImport Type = "import"
)

// TargetSelected refers to the counter under the cursor.
const TargetSelected = "selected"

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs holds the new counter's name and the raw start text. An empty
// Start means now.
type AddArgs struct {
	Name  string
	Start string
}

type FormatArgs struct {
	Target string
	Format elapsed.DisplayFormat
}

type PinArgs struct {
	Target string
	Pinned bool
}

type RenameArgs struct {
	Target string
	Name   string
}

type DeleteArgs struct {
	Target string
}

type ExportArgs struct {
	Path string
}

type ImportArgs struct {
	Path string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Format *FormatArgs
	Pin    *PinArgs
	Rename *RenameArgs
	Delete *DeleteArgs
	Export *ExportArgs
	Import *ImportArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	rest = strings.TrimSpace(rest)

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeFormat:
		return parseFormat(input, rest)
	case TypePin, TypeUnpin:
		return parsePin(input, Type(head), rest)
	case TypeRename:
		return parseRename(input, rest)
	case TypeDelete:
		return parseDelete(input, rest)
	case TypeExport:
		return Command{Type: TypeExport, Raw: input, Export: &ExportArgs{Path: rest}}, nil
	case TypeImport:
		if rest == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "import requires a file path"}
		}
		return Command{Type: TypeImport, Raw: input, Import: &ImportArgs{Path: rest}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw, rest string) (Command, error) {
	name, start, hasStart := strings.Cut(rest, "@")
	name = strings.TrimSpace(name)
	start = strings.TrimSpace(start)
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a name"}
	}
	if hasStart {
		if start == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a start after @"}
		}
		if _, err := model.ParseInstant(start, time.Local); err != nil {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid start %q", start)}
		}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Name: name, Start: start}}, nil
}

func parseFormat(raw, rest string) (Command, error) {
	target, tail, err := splitTarget(rest)
	if err != nil || tail == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "format requires target and format"}
	}
	format, err := elapsed.ParseDisplayFormat(tail)
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown format %q", tail)}
	}
	return Command{Type: TypeFormat, Raw: raw, Format: &FormatArgs{Target: target, Format: format}}, nil
}

func parsePin(raw string, kind Type, rest string) (Command, error) {
	target, tail, err := splitTarget(rest)
	if err != nil || tail != "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a single target", kind)}
	}
	return Command{Type: kind, Raw: raw, Pin: &PinArgs{Target: target, Pinned: kind == TypePin}}, nil
}

func parseRename(raw, rest string) (Command, error) {
	target, name, err := splitTarget(rest)
	if err != nil || name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires target and new name"}
	}
	return Command{Type: TypeRename, Raw: raw, Rename: &RenameArgs{Target: target, Name: name}}, nil
}

func parseDelete(raw, rest string) (Command, error) {
	target, tail, err := splitTarget(rest)
	if err != nil || tail != "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete requires a single target"}
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{Target: target}}, nil
}

// splitTarget takes the leading target off rest. A target with spaces is
// written in double quotes.
func splitTarget(rest string) (target, tail string, err error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", "", fmt.Errorf("missing target")
	}
	if strings.HasPrefix(rest, `"`) {
		end := strings.Index(rest[1:], `"`)
		if end < 0 {
			return "", "", fmt.Errorf("unterminated quote")
		}
		target = rest[1 : end+1]
		tail = strings.TrimSpace(rest[end+2:])
	} else {
		target, tail, _ = strings.Cut(rest, " ")
		tail = strings.TrimSpace(tail)
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return "", "", fmt.Errorf("missing target")
	}
	if strings.EqualFold(target, TargetSelected) {
		target = TargetSelected
	}
	return target, tail, nil
}

// Resolve finds the counter a target names. TargetSelected maps to
// selectedID; anything else is an id or a case-insensitive name.
func Resolve(counters []model.Counter, target, selectedID string) (model.Counter, error) {
	ref := target
	if target == TargetSelected {
		if selectedID == "" {
			return model.Counter{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "no counter selected"}
		}
		ref = selectedID
	}
	c, ok := model.Find(counters, ref)
	if !ok {
		return model.Counter{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("no counter matches %q", target)}
	}
	return c, nil
}
