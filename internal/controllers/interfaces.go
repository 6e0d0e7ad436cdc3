package controllers

import (
	"net/http"
	"net/url"
)

//go:generate mockery --case=snake --name=ClientCtrl
//go:generate mockery --case=snake --name=TgmCtrl

type ClientCtrl interface {
	Send(method string, url *url.URL, body []byte, headers map[string]string) ([]byte, http.Header, error)
	SendForm(url *url.URL, form url.Values) ([]byte, error)
}

type TgmCtrl interface {
	Send(text string) error
}
