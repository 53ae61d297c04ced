package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"fridgemate/domain"
	"fridgemate/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadRecorder struct {
	fileName string
	body     []byte
}

func (u *uploadRecorder) UploadFile(_ context.Context, fileName string, body []byte, folder string, _ string) (string, error) {
	u.fileName, u.body = fileName, body
	return folder + "/" + fileName, nil
}

func (u *uploadRecorder) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.example/" + objectKey
}

func (s testServer) addRecipe(t *testing.T, name string, ingredients ...string) entities.Recipe {
	t.Helper()

	resp, env := s.do(t, http.MethodPost, "/api/v1/recipes", domain.RecipeRequest{
		Name:        name,
		Description: name + " 만들기",
		CookingTime: "15분",
		Ingredients: ingredients,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Error)

	var recipe entities.Recipe
	require.NoError(t, json.Unmarshal(env.Data, &recipe))
	return recipe
}

func TestRecipeHandler_CRUD(t *testing.T) {
	s := newTestServer(t, nil)
	omelet := s.addRecipe(t, "오믈렛", "계란", "우유")
	assert.NotEmpty(t, omelet.ID)
	assert.True(t, omelet.IsCustom)
	assert.Equal(t, "기타", omelet.RecipeCategory)

	resp, env := s.do(t, http.MethodGet, "/api/v1/recipes/"+omelet.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = s.do(t, http.MethodPut, "/api/v1/recipes/"+omelet.ID, `{"cookingTime": "5분"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Error)
	var updated entities.Recipe
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "5분", updated.CookingTime)
	assert.Equal(t, omelet.Name, updated.Name)

	resp, env = s.do(t, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recipes []entities.Recipe
	require.NoError(t, json.Unmarshal(env.Data, &recipes))
	assert.Len(t, recipes, 1)

	resp, _ = s.do(t, http.MethodDelete, "/api/v1/recipes/"+omelet.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/v1/recipes/"+omelet.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecipeHandler_AddRejectsMissingIngredients(t *testing.T) {
	s := newTestServer(t, nil)

	resp, env := s.do(t, http.MethodPost, "/api/v1/recipes", domain.RecipeRequest{
		Name:        "빈 요리",
		Description: "재료 없음",
		CookingTime: "1분",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, domain.MessageFailedSaveRecipe, env.Message)
}

func TestRecipeHandler_Recommendations(t *testing.T) {
	s := newTestServer(t, nil)
	s.addRecipe(t, "오믈렛", "계란", "우유")
	s.addRecipe(t, "두부조림", "두부", "간장")
	s.addRecipe(t, "비빔밥", "밥", "고추장")
	s.addFood(t, "계란", "6개", 10, "기타")
	s.addFood(t, "우유", "1L", 10, "유제품")
	s.addFood(t, "두부", "1모", 1, "기타")

	resp, env := s.do(t, http.MethodGet, "/api/v1/recipes/recommendations", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res domain.RecipeRecommendationResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 3, res.TotalRecipes)
	assert.Equal(t, 1, res.ExpiringItems)
	require.Len(t, res.Recipes, 2)
	assert.Equal(t, "두부조림", res.Recipes[0].Name)
	assert.True(t, res.Recipes[0].HasUrgent)
	assert.Equal(t, "오믈렛", res.Recipes[1].Name)
	assert.Equal(t, 100, res.Recipes[1].MatchPercentage)

	resp, env = s.do(t, http.MethodGet, "/api/v1/recipes/recommendations?expiring_only=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, "두부조림", res.Recipes[0].Name)
}

func TestRecipeHandler_Browse(t *testing.T) {
	s := newTestServer(t, nil)
	s.addRecipe(t, "오믈렛", "계란", "우유")
	s.addRecipe(t, "비빔밥", "밥", "고추장")
	s.addFood(t, "계란", "6개", 1, "기타")

	resp, env := s.do(t, http.MethodGet, "/api/v1/recipes/browse?q="+url.QueryEscape("비빔"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res []domain.MatchedRecipe
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Len(t, res, 1)
	assert.Equal(t, "비빔밥", res[0].Name)
	assert.Zero(t, res[0].MatchCount)

	resp, env = s.do(t, http.MethodGet, "/api/v1/recipes/browse", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Len(t, res, 2)
	assert.Equal(t, 1, res[0].MatchCount)
	assert.False(t, res[0].HasUrgent)
}

func TestRecipeHandler_ShoppingList(t *testing.T) {
	s := newTestServer(t, nil)
	omelet := s.addRecipe(t, "오믈렛", "계란", "우유")
	s.addFood(t, "계란", "6개", 10, "기타")

	resp, env := s.do(t, http.MethodPost, "/api/v1/recipes/shopping-list", domain.ShoppingListRequest{
		Selected: []domain.RecipeSelection{{ID: omelet.ID}, {ID: omelet.ID}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Error)

	var res domain.ShoppingListResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, []string{"계란"}, res.Recipes[0].Have)
	assert.Equal(t, []string{"우유"}, res.Needed)

	resp, _ = s.do(t, http.MethodPost, "/api/v1/recipes/shopping-list", domain.ShoppingListRequest{
		Selected: []domain.RecipeSelection{{ID: "missing"}},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/v1/recipes/shopping-list", `{"selected": []}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecipeHandler_ImportVerdicts(t *testing.T) {
	s := newTestServer(t, nil)

	body := `[
		{"name": "김치찌개", "description": "얼큰한 찌개", "cookingTime": "30분", "ingredients": ["김치", "돼지고기"]},
		{"name": "이름만"},
		42
	]`
	resp, env := s.do(t, http.MethodPost, "/api/v1/recipes/import", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Error)

	var res domain.ImportResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 1, res.Accepted)
	require.Len(t, res.Verdicts, 3)
	assert.True(t, res.Verdicts[0].Accepted)
	assert.False(t, res.Verdicts[1].Accepted)
	assert.NotEmpty(t, res.Verdicts[1].Reason)
	assert.Equal(t, "malformed record", res.Verdicts[2].Reason)
}

func TestRecipeHandler_ImportRejectsAll(t *testing.T) {
	s := newTestServer(t, nil)

	resp, env := s.do(t, http.MethodPost, "/api/v1/recipes/import", `[{"name": "이름만"}]`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, env.Status)

	var res domain.ImportResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Zero(t, res.Accepted)
	require.Len(t, res.Verdicts, 1)

	resp, _ = s.do(t, http.MethodPost, "/api/v1/recipes/import", `{"name": "not an array"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, env = s.do(t, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recipes []entities.Recipe
	require.NoError(t, json.Unmarshal(env.Data, &recipes))
	assert.Empty(t, recipes)
}

func TestRecipeHandler_ExportRoundTrip(t *testing.T) {
	s := newTestServer(t, nil)
	s.addRecipe(t, "오믈렛", "계란", "우유")

	resp, env := s.do(t, http.MethodGet, "/api/v1/recipes/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "recipes.json")

	var exported []entities.Recipe
	require.NoError(t, json.Unmarshal(env.raw, &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, "오믈렛", exported[0].Name)

	other := newTestServer(t, nil)
	resp, _ = other.do(t, http.MethodPost, "/api/v1/recipes/import", string(env.raw))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRecipeHandler_Backup(t *testing.T) {
	s := newTestServer(t, nil)

	resp, env := s.do(t, http.MethodPost, "/api/v1/recipes/export/backup", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, domain.ErrExportSinkDisabled.Error(), env.Error)

	recorder := &uploadRecorder{}
	s = newTestServer(t, recorder)
	s.addRecipe(t, "오믈렛", "계란", "우유")

	resp, env = s.do(t, http.MethodPost, "/api/v1/recipes/export/backup", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Error)

	var res domain.ExportBackupResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "https://bucket.example/recipes/recipes-20240310-090000.json", res.Location)
	assert.Equal(t, "recipes-20240310-090000.json", recorder.fileName)
	assert.Contains(t, string(recorder.body), "오믈렛")
}
