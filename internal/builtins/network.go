package builtins

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kaynat-lang/kaynat/internal/interp"
)

// networkTools is grounded on
// original_source/kaynat/stdlib/network_tools.py, moved from
// urllib.request to net/http/net/url. A short client timeout keeps the
// single synchronous §4.5 host call from blocking the interpreter
// indefinitely (the spec's §5 concurrency model makes no allowance for a
// built-in to suspend otherwise).
func networkTools() []registration {
	return []registration{
		{"http_get", biHTTPGet},
		{"http_post", biHTTPPost},
		{"url_encode", biURLEncode},
		{"url_decode", biURLDecode},
		{"is_url_reachable", biIsURLReachable},
	}
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

func biHTTPGet(args []interp.Value) (interp.Value, error) {
	u, err := strArg("http_get", args, 0)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Get(u)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	return strVal(string(body)), nil
}

func biHTTPPost(args []interp.Value) (interp.Value, error) {
	u, err := strArg("http_post", args, 0)
	if err != nil {
		return nil, err
	}
	body := optStr(args, 1, "")
	contentType := optStr(args, 2, "text/plain")
	resp, err := httpClient.Post(u, contentType, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	return strVal(string(respBody)), nil
}

func biURLEncode(args []interp.Value) (interp.Value, error) {
	s, err := strArg("url_encode", args, 0)
	if err != nil {
		return nil, err
	}
	return strVal(url.QueryEscape(s)), nil
}

func biURLDecode(args []interp.Value) (interp.Value, error) {
	s, err := strArg("url_decode", args, 0)
	if err != nil {
		return nil, err
	}
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return nil, fmt.Errorf("invalid URL encoding: %w", err)
	}
	return strVal(decoded), nil
}

func biIsURLReachable(args []interp.Value) (interp.Value, error) {
	u, err := strArg("is_url_reachable", args, 0)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodHead, u, nil)
	if err != nil {
		return boolVal(false), nil
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return boolVal(false), nil
	}
	defer resp.Body.Close()
	return boolVal(resp.StatusCode == http.StatusOK), nil
}
