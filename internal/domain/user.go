package domain

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DemoUsers is the static assignee list shown in the demo UI. Assignment is
// a loose association: the core never checks a task's assignee against it.
var DemoUsers = []User{
	{ID: "user1", Name: "Alice"},
	{ID: "user2", Name: "Bob"},
	{ID: "user3", Name: "Charlie"},
}
