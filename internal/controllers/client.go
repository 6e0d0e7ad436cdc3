package controllers

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ClientController struct {
	client *http.Client
	logger *logrus.Logger
}

func NewClientController(
	client *http.Client,
	logger *logrus.Logger,
) *ClientController {
	return &ClientController{
		client: client,
		logger: logger,
	}
}

// APIError carries a non-2xx upstream response so the caller can relay
// the original status and text verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("statusCode %d; resp %s;", e.StatusCode, e.Message)
}

// Send performs a JSON request against the trading API and returns the
// raw response body together with the response headers.
func (c *ClientController) Send(method string, url *url.URL, body []byte, headers map[string]string) ([]byte, http.Header, error) {
	req, err := http.NewRequest(method, url.String(), bytes.NewReader(body))
	if err != nil {
		return nil, nil, errors.Wrap(err, "build request")
	}

	req.Header.Add("Content-Type", "application/json; charset=utf-8")
	for k, v := range headers {
		req.Header.Add(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respErr, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return nil, nil, err
		}

		return nil, resp.Header, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(respErr)),
		}
	}

	out, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return out, resp.Header, nil
}

// SendForm posts a form-encoded body, used for the OAuth token
// endpoint. The form carries credentials, so neither it nor the
// response is ever logged.
func (c *ClientController) SendForm(url *url.URL, form url.Values) ([]byte, error) {
	resp, err := c.client.PostForm(url.String(), form)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	out, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return out, nil
}
