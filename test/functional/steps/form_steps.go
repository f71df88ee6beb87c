package steps

import (
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

func (fc *FeatureContext) aFormExistsWithName(name string) error {
	response, err := fc.apiDriver.CreateForm(map[string]any{"name": name})
	if err != nil {
		return err
	}
	fc.require.Equal(201, response.StatusCode)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(response.Body, &data))
	fc.formID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iCreateAFormWithARequiredField(name, fieldName, fieldType string) error {
	return fc.createForm(map[string]any{
		"name": name,
		"fields": []map[string]any{
			{"name": fieldName, "type": fieldType, "isRequired": true},
		},
	})
}

func (fc *FeatureContext) iCreateAFormWithoutFields(name string) error {
	return fc.createForm(map[string]any{"name": name})
}

func (fc *FeatureContext) iCreateAFormWithAFieldOfType(name, fieldType string) error {
	return fc.createForm(map[string]any{
		"name":   name,
		"fields": []map[string]any{{"name": "answer", "type": fieldType}},
	})
}

func (fc *FeatureContext) createForm(body map[string]any) error {
	response, err := fc.apiDriver.CreateForm(body)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iGetTheFormByItsID() error {
	response, err := fc.apiDriver.GetForm(fc.formID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iGetAFormThatWasNeverCreated() error {
	response, err := fc.apiDriver.GetForm(uuid.NewString())
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iListAllForms() error {
	response, err := fc.apiDriver.ListForms()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iUpdateTheFormWithTheName(name string) error {
	response, err := fc.apiDriver.UpdateForm(fc.formID, map[string]any{"name": name})
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iDeleteTheForm() error {
	response, err := fc.apiDriver.DeleteForm(fc.formID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheFormDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.require.NotEmpty(data["createdAt"])
	fc.require.NotEmpty(data["updatedAt"])
	fc.formID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheFormWithName(name string) error {
	if fc.responseData == nil {
		if err := fc.theResponseShouldContainTheFormDetails(); err != nil {
			return err
		}
	}
	fc.require.Equal(name, fc.responseData["name"])
	return nil
}

func (fc *FeatureContext) theFormShouldBeVisibleAndNotReadOnly() error {
	fc.require.Equal(true, fc.responseData["isVisible"])
	fc.require.Equal(false, fc.responseData["isReadOnly"])
	return nil
}

func (fc *FeatureContext) theFormFieldsShouldBe(table *godog.Table) error {
	fields, ok := fc.responseData["fields"].([]any)
	fc.require.True(ok, "fields should be a list")
	fc.require.Len(fields, len(table.Rows)-1)

	for i, row := range table.Rows[1:] {
		field := fields[i].(map[string]any)
		required, err := strconv.ParseBool(row.Cells[2].Value)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}

		fc.require.Equal(row.Cells[0].Value, field["name"])
		fc.require.Equal(row.Cells[1].Value, field["type"])
		fc.require.Equal(required, field["isRequired"])
	}
	return nil
}

func (fc *FeatureContext) theListShouldContainTheFormWithName(name string) error {
	if fc.responseListData == nil {
		var data []map[string]any
		fc.require.NoError(fc.decodeBody(fc.response.Body, &data))
		fc.responseListData = data
	}

	for _, form := range fc.responseListData {
		if form["name"] == name {
			return nil
		}
	}
	return fmt.Errorf("form %q not found in list", name)
}
