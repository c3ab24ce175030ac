package response

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"hotel/shared/failure"
	"hotel/shared/logger"
)

const (
	MessageOperationFailed = "Operation failed: "
	MessageUnrecognized    = "Unrecognized choice!"
)

// WithMessage prints a single line for the user.
func WithMessage(writer io.Writer, message string) {
	write(writer, message+"\n")
}

// WithHeader prints a section title between two rules.
func WithHeader(writer io.Writer, title string) {
	rule := strings.Repeat("-", 33)

	write(writer, "\n"+rule+"\n"+title+"\n"+rule+"\n")
}

// WithError prints a classified failure as its message and anything else as a failed operation.
func WithError(writer io.Writer, err error) {
	var fail *failure.Failure

	if failure.IsUserFacing(err) && errors.As(err, &fail) {
		WithMessage(writer, fail.Message)

		return
	}

	logger.ErrorWithStack(err)

	WithMessage(writer, MessageOperationFailed+err.Error())
}

// WithTable prints rows under headers in aligned columns, or empty when there are no rows.
func WithTable(writer io.Writer, headers []string, rows [][]string, empty string) {
	if len(rows) == 0 {
		WithMessage(writer, empty)

		return
	}

	table := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)

	write(table, strings.Join(headers, "\t")+"\n")

	separators := make([]string, len(headers))
	for idx, header := range headers {
		separators[idx] = strings.Repeat("-", len(header))
	}

	write(table, strings.Join(separators, "\t")+"\n")

	for _, row := range rows {
		write(table, strings.Join(row, "\t")+"\n")
	}

	if err := table.Flush(); err != nil {
		logger.ErrorWithStack(err)
	}
}

func write(writer io.Writer, text string) {
	if _, err := fmt.Fprint(writer, text); err != nil {
		logger.ErrorWithStack(err)
	}
}
