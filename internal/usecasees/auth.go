package usecasees

import (
	"net/url"

	"saxo/internal/controllers"
	"saxo/internal/usecasees/structs"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrMissingGrant = errors.New("invalid query parameters")

type authUseCase struct {
	clientController controllers.ClientCtrl

	appKey        string
	appSecret     string
	redirectURI   string
	tokenEndpoint string

	logger *logrus.Logger
}

func NewAuthUseCase(
	client controllers.ClientCtrl,
	appKey string,
	appSecret string,
	redirectURI string,
	tokenEndpoint string,
	logger *logrus.Logger,
) *authUseCase {
	return &authUseCase{
		clientController: client,
		appKey:           appKey,
		appSecret:        appSecret,
		redirectURI:      redirectURI,
		tokenEndpoint:    tokenEndpoint,
		logger:           logger,
	}
}

// RequestToken exchanges an authorization code or a refresh token for
// an access token and returns the raw token payload for relaying. The
// request and the payload hold credentials and must never be logged.
func (u *authUseCase) RequestToken(tokenReq *structs.TokenRequest) ([]byte, error) {
	form := url.Values{}
	form.Set("client_id", u.appKey)
	form.Set("client_secret", u.appSecret)
	form.Set("redirect_uri", u.redirectURI)

	switch {
	case tokenReq.Code != "":
		form.Set("grant_type", "authorization_code")
		form.Set("code", tokenReq.Code)
	case tokenReq.RefreshToken != "":
		form.Set("grant_type", "refresh_token")
		form.Set("refresh_token", tokenReq.RefreshToken)
	default:
		return nil, ErrMissingGrant
	}

	endpoint, err := url.Parse(u.tokenEndpoint)
	if err != nil {
		return nil, err
	}

	body, err := u.clientController.SendForm(endpoint, form)
	if err != nil {
		return nil, err
	}

	metrics[structs.MetricTokenExchange].Inc()
	u.logger.Infof("token exchanged via %s grant", form.Get("grant_type"))

	return body, nil
}
