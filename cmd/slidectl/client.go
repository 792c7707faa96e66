package main

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

func newClient(apiURL string) *resty.Client {
	return resty.New().
		SetBaseURL(apiURL).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)
}

func checkStatus(resp *resty.Response) error {
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func runList(apiURL, userID string, out io.Writer) error {
	var body struct {
		Presentations []struct {
			ID        string    `json:"id"`
			Title     string    `json:"title"`
			Slides    []any     `json:"slides"`
			UpdatedAt time.Time `json:"updatedAt"`
		} `json:"presentations"`
		Count int `json:"count"`
	}
	resp, err := newClient(apiURL).R().
		SetResult(&body).
		Get(fmt.Sprintf("/api/users/%s/presentations", userID))
	if err != nil {
		return err
	}
	if err := checkStatus(resp); err != nil {
		return err
	}

	for _, p := range body.Presentations {
		fmt.Fprintf(out, "%s\t%s\t%d slides\t%s\n",
			p.ID, p.Title, len(p.Slides), p.UpdatedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(out, "%d presentation(s)\n", body.Count)
	return nil
}

func runGet(apiURL, userID, presentationID string, out io.Writer) error {
	resp, err := newClient(apiURL).R().
		Get(fmt.Sprintf("/api/users/%s/presentations/%s", userID, presentationID))
	if err != nil {
		return err
	}
	if err := checkStatus(resp); err != nil {
		return err
	}

	// Re-indent for readability.
	var doc map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func runDelete(apiURL, userID, presentationID string, out io.Writer) error {
	resp, err := newClient(apiURL).R().
		Delete(fmt.Sprintf("/api/users/%s/presentations/%s", userID, presentationID))
	if err != nil {
		return err
	}
	if err := checkStatus(resp); err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted %s\n", presentationID)
	return nil
}

func runExport(apiURL, userID, presentationID, format, output string, out io.Writer) error {
	resp, err := newClient(apiURL).R().
		SetQueryParam("format", format).
		Get(fmt.Sprintf("/api/users/%s/presentations/%s/export", userID, presentationID))
	if err != nil {
		return err
	}
	if err := checkStatus(resp); err != nil {
		return err
	}

	if output == "" {
		output = "presentation.html"
		if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
			if name := params["filename"]; name != "" {
				output = name
			}
		}
	}
	if err := os.WriteFile(output, resp.Body(), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s (%d bytes)\n", output, len(resp.Body()))
	return nil
}

func runGenerate(apiURL, userID, topic, audience, tone string, out io.Writer) error {
	var saved struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Slides []any  `json:"slides"`
	}
	resp, err := newClient(apiURL).R().
		SetBody(map[string]string{
			"topic":    topic,
			"audience": audience,
			"tone":     tone,
		}).
		SetResult(&saved).
		Post(fmt.Sprintf("/api/users/%s/presentations/ai", userID))
	if err != nil {
		return err
	}
	if err := checkStatus(resp); err != nil {
		return err
	}
	fmt.Fprintf(out, "generated %q (%s) with %d slide(s)\n", saved.Title, saved.ID, len(saved.Slides))
	return nil
}
