package steps

func (fc *FeatureContext) iCallTheHealthEndpoint() error {
	response, err := fc.apiDriver.GetHealth()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldReportTheServerIsRunning() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)

	fc.require.Equal("ok", data["status"])
	fc.require.Equal("Server is running", data["message"])
	return nil
}
