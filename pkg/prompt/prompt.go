// Package prompt asks questions on the terminal with promptui.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/confusion/pkg/confirm"
	"tableflip.dev/confusion/pkg/device"
	"tableflip.dev/confusion/pkg/menu"
)

// Terminal prompts on In and Out. Nil streams mean the process stdio.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func (t *Terminal) stdin() io.ReadCloser {
	if t.In == nil {
		return nil
	}
	return io.NopCloser(t.In)
}

func (t *Terminal) stdout() io.WriteCloser {
	if t.Out == nil {
		return nil
	}
	return nopWriteCloser{t.Out}
}

// Ask implements confirm.Asker with a y/N question. Declining or
// interrupting the prompt is a Cancel, not an error.
func (t *Terminal) Ask(_ context.Context, title, body string) (confirm.Choice, error) {
	if body != "" {
		_, _ = fmt.Fprintln(t.writer(), body)
	}
	p := promptui.Prompt{
		Label:     title,
		IsConfirm: true,
		Stdin:     t.stdin(),
		Stdout:    t.stdout(),
	}
	_, err := p.Run()
	switch {
	case err == nil:
		return confirm.OK, nil
	case errors.Is(err, promptui.ErrAbort), errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return confirm.Cancel, nil
	default:
		return confirm.Cancel, err
	}
}

// Permission asks whether to grant a device capability. It has the shape of
// local.PromptFunc.
func (t *Terminal) Permission(ctx context.Context, c device.Capability) (bool, error) {
	choice, err := t.Ask(ctx, fmt.Sprintf("Allow Con Fusion to use your %s", c), "")
	return choice == confirm.OK, err
}

func (t *Terminal) writer() io.Writer {
	if t.Out == nil {
		return os.Stdout
	}
	return t.Out
}

// PickDish lets the user choose a dish from a searchable list.
func (t *Terminal) PickDish(dishes []menu.Item) (menu.Item, error) {
	if len(dishes) == 0 {
		return menu.Item{}, errors.New("prompt: no dishes to pick from")
	}
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Category | cyan }}",
		Inactive: "   {{ .Name }} {{ .Category | cyan }}",
		Selected: "{{ .Name | bold }}",
		Details: `
--------- Details ----------
{{ .Description }}
`,
	}

	searcher := func(input string, index int) bool {
		name := strings.Replace(strings.ToLower(dishes[index].Name), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}

	s := promptui.Select{
		HideHelp:  true,
		Label:     "Dish",
		Items:     dishes,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     t.stdin(),
		Stdout:    t.stdout(),
	}
	i, _, err := s.Run()
	if err != nil {
		return menu.Item{}, err
	}
	return dishes[i], nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
