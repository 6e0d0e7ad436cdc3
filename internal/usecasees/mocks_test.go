package usecasees

import (
	"net/http"
	"net/url"
)

// fakeClientCtrl records the last request and replays a canned
// response.
type fakeClientCtrl struct {
	method  string
	url     *url.URL
	body    []byte
	headers map[string]string
	form    url.Values

	response    []byte
	respHeaders http.Header
	err         error
}

func (f *fakeClientCtrl) Send(method string, url *url.URL, body []byte, headers map[string]string) ([]byte, http.Header, error) {
	f.method = method
	f.url = url
	f.body = body
	f.headers = headers

	if f.err != nil {
		return nil, nil, f.err
	}

	respHeaders := f.respHeaders
	if respHeaders == nil {
		respHeaders = http.Header{}
	}

	return f.response, respHeaders, nil
}

func (f *fakeClientCtrl) SendForm(url *url.URL, form url.Values) ([]byte, error) {
	f.method = http.MethodPost
	f.url = url
	f.form = form

	if f.err != nil {
		return nil, f.err
	}

	return f.response, nil
}

// fakeTgmCtrl collects the notification messages.
type fakeTgmCtrl struct {
	messages []string
	err      error
}

func (f *fakeTgmCtrl) Send(text string) error {
	if f.err != nil {
		return f.err
	}

	f.messages = append(f.messages, text)

	return nil
}
