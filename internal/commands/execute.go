package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Format func(FormatArgs) (Result, error)
	Pin    func(PinArgs) (Result, error)
	Rename func(RenameArgs) (Result, error)
	Delete func(DeleteArgs) (Result, error)
	Export func(ExportArgs) (Result, error)
	Import func(ImportArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeFormat:
		if handlers.Format == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Format(*cmd.Format)
	case TypePin, TypeUnpin:
		if handlers.Pin == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Pin(*cmd.Pin)
	case TypeRename:
		if handlers.Rename == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Rename(*cmd.Rename)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Delete(*cmd.Delete)
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Export(*cmd.Export)
	case TypeImport:
		if handlers.Import == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Import(*cmd.Import)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missingHandler(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
