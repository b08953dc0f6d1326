package tasklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomotask/internal/i18n"
	"pomotask/internal/tasks"
)

func TestCounterText(t *testing.T) {
	i18n.SetLang("en")
	list := []tasks.Task{
		{ID: "1", Title: "a"},
		{ID: "2", Title: "b", Completed: true},
		{ID: "3", Title: "c"},
	}

	assert.Equal(t, "2 open", counterText(list))
	assert.Equal(t, "0 open", counterText(nil))
}
