package usecasees

import (
	"net/http"
	"net/url"
	"path"
	"strconv"

	"saxo/internal/controllers"
	"saxo/internal/usecasees/structs"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

const (
	seriesURLPath     = "/ref/v1/instruments/contractoptionspaces"
	detailsURLPath    = "/ref/v1/instruments/details"
	infoPricesURLPath = "/trade/v1/infoprices"
	costsURLPath      = "/cs/v1/tradingconditions/ContractOptionSpaces"
)

type instrumentUseCase struct {
	clientController controllers.ClientCtrl

	url        string
	accountKey string

	logger *logrus.Logger
}

func NewInstrumentUseCase(
	client controllers.ClientCtrl,
	url string,
	accountKey string,
	logger *logrus.Logger,
) *instrumentUseCase {
	return &instrumentUseCase{
		clientController: client,
		url:              url,
		accountKey:       accountKey,
		logger:           logger,
	}
}

func bearerHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// GetSeries fetches the option sheet of an option root, all expiry
// dates, tradable series only.
func (u *instrumentUseCase) GetSeries(token string, optionRootID int64) ([]byte, error) {
	baseURL, err := url.Parse(u.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(baseURL.Path, seriesURLPath, strconv.FormatInt(optionRootID, 10))

	q := baseURL.Query()
	q.Set("OptionSpaceSegment", "AllDates")
	q.Set("TradingStatus", "Tradable")
	baseURL.RawQuery = q.Encode()

	body, _, err := u.clientController.Send(http.MethodGet, baseURL, nil, bearerHeaders(token))
	if err != nil {
		return nil, err
	}

	return body, nil
}

// Validate fetches the instrument's order settings and runs the order
// against them. The raw details are returned next to the warnings so
// the caller can relay both.
func (u *instrumentUseCase) Validate(token string, order *structs.Order) ([]byte, []string, error) {
	baseURL, err := url.Parse(u.url)
	if err != nil {
		return nil, nil, err
	}

	baseURL.Path = path.Join(baseURL.Path, detailsURLPath, strconv.FormatInt(order.Uic, 10), order.AssetType)

	q := baseURL.Query()
	q.Set("AccountKey", u.accountKey)
	q.Set("FieldGroups", "OrderSetting")
	baseURL.RawQuery = q.Encode()

	body, _, err := u.clientController.Send(http.MethodGet, baseURL, nil, bearerHeaders(token))
	if err != nil {
		return nil, nil, err
	}

	var details structs.InstrumentDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, nil, err
	}

	warnings := CheckConditions(order, &details)
	for _, w := range warnings {
		u.logger.Warn(w)
	}

	return body, warnings, nil
}

// GetQuote returns the current bid for the instrument from the
// infoprices endpoint.
func (u *instrumentUseCase) GetQuote(token string, assetType string, uic int64) (float64, error) {
	baseURL, err := url.Parse(u.url)
	if err != nil {
		return 0, err
	}

	baseURL.Path = path.Join(baseURL.Path, infoPricesURLPath)

	q := baseURL.Query()
	q.Set("AssetType", assetType)
	q.Set("uic", strconv.FormatInt(uic, 10))
	baseURL.RawQuery = q.Encode()

	body, _, err := u.clientController.Send(http.MethodGet, baseURL, nil, bearerHeaders(token))
	if err != nil {
		return 0, err
	}

	var out struct {
		Quote struct {
			Bid float64 `json:"Bid"`
			Ask float64 `json:"Ask"`
		} `json:"Quote"`
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return 0, err
	}

	return out.Quote.Bid, nil
}

// GetCosts fetches the scheduled trading conditions of an option root
// for cost reporting.
func (u *instrumentUseCase) GetCosts(token string, optionRootID int64) ([]byte, error) {
	baseURL, err := url.Parse(u.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(baseURL.Path, costsURLPath, u.accountKey, strconv.FormatInt(optionRootID, 10))

	q := baseURL.Query()
	q.Set("FieldGroups", "ScheduledTradingConditions")
	baseURL.RawQuery = q.Encode()

	body, _, err := u.clientController.Send(http.MethodGet, baseURL, nil, bearerHeaders(token))
	if err != nil {
		return nil, err
	}

	return body, nil
}
