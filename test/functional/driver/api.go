package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string, client *http.Client) *APIDriver {
	if client == nil {
		client = &http.Client{}
	}

	return &APIDriver{
		baseURL: baseURL,
		client:  client,
	}
}

func (d *APIDriver) GetHealth() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/health", d.baseURL))
}

func (d *APIDriver) CreateForm(body map[string]any) (*http.Response, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/api/forms", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) ListForms() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/api/forms", d.baseURL))
}

func (d *APIDriver) GetForm(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/api/forms/%s", d.baseURL, id))
}

func (d *APIDriver) UpdateForm(id string, body map[string]any) (*http.Response, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/api/forms/%s", d.baseURL, id), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) DeleteForm(id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/forms/%s", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}
