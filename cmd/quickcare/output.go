package main

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sort"

	"github.com/quickcare/backend-api-go/hospitals"
	"github.com/quickcare/backend-api-go/result"
)

// watch prints every state published on h until a terminal one arrives.
// The returned func blocks until that happens or ctx is done.
func watch[T any](ctx context.Context, h *result.Holder[T], out io.Writer, render func(io.Writer, T)) func() {
	subCtx, cancel := context.WithCancel(ctx)
	ch := h.Subscribe(subCtx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for r := range ch {
			switch r.State() {
			case result.StateLoading:
				fmt.Fprintln(out, "Loading...")
			case result.StateError:
				fmt.Fprintf(out, "Error: %s\n", r.Message())
				return
			case result.StateSuccess:
				data, _ := r.Data()
				render(out, data)
				return
			}
		}
	}()

	return func() {
		<-done
		cancel()
	}
}

func printSearchResult(out io.Writer, res hospitals.SearchResult) {
	if len(res.Hospitals) == 0 {
		fmt.Fprintln(out, "No hospitals found")
		return
	}
	for i, h := range res.Hospitals {
		fmt.Fprintf(out, "%d. %s (%.1f km)", i+1, h.Name, h.DistanceKm)
		if h.Address != "" {
			fmt.Fprintf(out, " - %s", h.Address)
		}
		if phone := contactNumber(h); phone != "" {
			fmt.Fprintf(out, " tel %s", phone)
		}
		fmt.Fprintln(out)
	}
}

func contactNumber(h hospitals.Hospital) string {
	for _, n := range []string{h.Emergency, h.Telephone, h.Mobile} {
		if n != "" && n != "0" {
			return n
		}
	}
	return ""
}

func printHealth(out io.Writer, health map[string]interface{}) {
	keys := make([]string, 0, len(health))
	for k := range health {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%s: %v\n", k, health[k])
	}
}

func printConditions(out io.Writer, conditions []hospitals.Condition) {
	for _, c := range conditions {
		fmt.Fprintf(out, "%-10s %s\n", c.Category, c.Name)
	}
}

func printUserID(out io.Writer, userID string) {
	fmt.Fprintf(out, "user %s\n", userID)
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}
	return img, nil
}
